// Package console hosts the check-in flow in a terminal: a home screen, the
// check-in form and the status summary, driven by numbered menu choices.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"safecheck/internal/checkin/form"
	"safecheck/internal/checkin/metrics"
	"safecheck/internal/checkin/models"
	"safecheck/internal/checkin/ports"
	"safecheck/internal/checkin/presentation"
	"safecheck/internal/checkin/taxonomy"
	dErrors "safecheck/pkg/domain-errors"
)

// FormFactory creates the form owned by one visit to the check-in screen.
type FormFactory func() (*form.Form, error)

type App struct {
	in       io.Reader
	out      io.Writer
	newForm  FormFactory
	renderer *presentation.Renderer
	share    ports.ShareSheet
	alerter  ports.Alerter
	metrics  *metrics.Metrics
	logger   *slog.Logger

	lines <-chan string
}

type Option func(*App)

func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(a *App) {
		a.metrics = m
	}
}

func New(
	in io.Reader,
	out io.Writer,
	newForm FormFactory,
	renderer *presentation.Renderer,
	share ports.ShareSheet,
	alerter ports.Alerter,
	opts ...Option,
) (*App, error) {
	if in == nil || out == nil {
		return nil, fmt.Errorf("input and output are required")
	}
	if newForm == nil {
		return nil, fmt.Errorf("form factory is required")
	}
	if renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	if share == nil {
		return nil, fmt.Errorf("share sheet is required")
	}
	if alerter == nil {
		return nil, fmt.Errorf("alerter is required")
	}

	a := &App{
		in:       in,
		out:      out,
		newForm:  newForm,
		renderer: renderer,
		share:    share,
		alerter:  alerter,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// errQuit ends Run without error; it is returned when the user quits or
// input runs out.
var errQuit = errors.New("quit")

// Run drives the screens until the user quits, input ends or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.lines = scanLines(ctx, a.in)

	err := a.home(ctx)
	if errors.Is(err, errQuit) {
		a.printf("\nGoodbye. Stay safe.\n")
		return nil
	}
	return err
}

func scanLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

func (a *App) readLine(ctx context.Context, prompt string) (string, error) {
	a.printf("%s", prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-a.lines:
		if !ok {
			return "", errQuit
		}
		return strings.TrimSpace(line), nil
	}
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

func (a *App) alert(ctx context.Context, err error) {
	title, msg := presentation.ErrorMessage(err)
	if alertErr := a.alerter.Alert(ctx, title, msg); alertErr != nil && a.logger != nil {
		a.logger.WarnContext(ctx, "alert failed", "error", alertErr)
	}
}

func (a *App) home(ctx context.Context) error {
	for {
		a.printf("\n=== SafeCheck ===\nStay Safe, Stay Connected\n\n")
		a.printf("Quickly check in with your location and status to keep your\nloved ones informed about your safety.\n\n")
		a.printf("  1) Start Check-In\n  q) Quit\n")

		choice, err := a.readLine(ctx, "> ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			if err := a.checkIn(ctx); err != nil {
				return err
			}
		case "q", "Q":
			return errQuit
		default:
			a.printf("Unknown choice %q\n", choice)
		}
	}
}

// checkIn runs one visit to the check-in screen. The form is dismissed on
// every exit path so late device responses are dropped.
func (a *App) checkIn(ctx context.Context) error {
	f, err := a.newForm()
	if err != nil {
		return fmt.Errorf("new check-in form: %w", err)
	}
	defer f.Dismiss()

	if err := f.RefreshLocation(ctx); err != nil {
		a.alert(ctx, err)
	}

	for {
		a.renderForm(f.State())
		choice, err := a.readLine(ctx, "> ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := a.pickStatus(ctx, f); err != nil {
				return err
			}
		case "2":
			msg, err := a.readLine(ctx, "Message (optional): ")
			if err != nil {
				return err
			}
			_ = f.SetMessage(msg)
		case "3":
			if err := f.RefreshLocation(ctx); err != nil {
				a.alert(ctx, err)
			}
		case "4":
			_ = f.OpenCamera()
			if err := f.TakePhoto(ctx); err != nil {
				// the capturer already prompted the user about a denial
				if !dErrors.HasCode(err, dErrors.CodePermissionDenied) {
					a.alert(ctx, err)
				}
				_ = f.CloseCamera()
			}
		case "5":
			_ = f.RemovePhoto()
		case "6":
			rec, err := f.Submit(ctx)
			if err != nil {
				a.alert(ctx, err)
				continue
			}
			confirmed, err := a.confirm(ctx, rec)
			if err != nil {
				return err
			}
			if !confirmed {
				continue
			}
			return a.status(ctx, rec)
		case "b", "B":
			return nil
		default:
			a.printf("Unknown choice %q\n", choice)
		}
	}
}

func (a *App) renderForm(st form.State) {
	a.printf("\n=== Safety Check-In ===\nLet others know you're safe\n\n")

	status := "(not selected)"
	if st.Status != "" {
		if meta, err := taxonomy.Resolve(st.Status.String()); err == nil {
			status = meta.Badge()
		}
	}
	a.printf("Status:   %s\n", status)

	msg := "(none)"
	if st.Message != "" {
		msg = st.Message
	}
	a.printf("Message:  %s\n", msg)
	a.printf("Location: %s\n", describeLocation(st))

	photo := "(none)"
	if !st.Photo.IsZero() {
		photo = "📸 " + st.Photo.String()
	}
	a.printf("Photo:    %s\n\n", photo)

	a.printf("  1) Choose status    2) Write message    3) Refresh location\n")
	a.printf("  4) Take photo       5) Remove photo     6) Submit check-in\n")
	a.printf("  b) Back\n")
}

func describeLocation(st form.State) string {
	switch {
	case st.LocationPhase == form.LocationAcquiring:
		return "Getting location..."
	case st.LocationPhase == form.LocationDenied:
		return "Location permission denied"
	case st.Location != nil:
		return fmt.Sprintf("📍 %s (%s)", st.Location.Address, presentation.FormatCoordinates(st.Location))
	case st.LocationPhase == form.LocationUnavailable:
		return "Location unavailable"
	default:
		return "(not requested)"
	}
}

func (a *App) pickStatus(ctx context.Context, f *form.Form) error {
	_ = f.TogglePicker()
	statuses := taxonomy.ListAll()
	a.printf("\nCurrent Status\n")
	for i, s := range statuses {
		a.printf("  %d) %s - %s\n", i+1, s.Badge(), s.Description)
	}

	choice, err := a.readLine(ctx, "Status: ")
	if err != nil {
		return err
	}
	id, ok := statusByChoice(statuses, choice)
	if !ok {
		id = choice
	}
	if err := f.SelectStatus(id); err != nil {
		a.alert(ctx, err)
		if f.State().PickerOpen {
			_ = f.TogglePicker()
		}
	}
	return nil
}

func statusByChoice(statuses []models.StatusMetadata, choice string) (string, bool) {
	n, err := strconv.Atoi(choice)
	if err != nil {
		return "", false
	}
	if n < 1 || n > len(statuses) {
		return "", false
	}
	return statuses[n-1].ID.String(), true
}

func (a *App) confirm(ctx context.Context, rec *models.Record) (bool, error) {
	a.printf("\n%s\n\n", presentation.FormatConfirmation(rec))
	for {
		answer, err := a.readLine(ctx, "Send check-in? (y/n) ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

func (a *App) status(ctx context.Context, rec *models.Record) error {
	for {
		a.printf("\n=== Check-In Sent! ===\nYour safety status has been recorded\n\n")
		a.printf("%s\n\n", a.renderer.FormatSummary(rec))
		a.printf("  1) Share Status\n  2) New Check-In\n  3) Back to Home\n")

		choice, err := a.readLine(ctx, "> ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			if err := a.share.Share(ctx, a.renderer.FormatShareText(rec)); err != nil {
				a.metrics.IncrementShare(metrics.OutcomeFailed)
				if a.logger != nil {
					a.logger.ErrorContext(ctx, "share failed", "record_id", rec.ID(), "error", err)
				}
				continue
			}
			a.metrics.IncrementShare(metrics.OutcomeShared)
		case "2":
			return a.checkIn(ctx)
		case "3":
			return nil
		default:
			a.printf("Unknown choice %q\n", choice)
		}
	}
}

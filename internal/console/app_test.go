package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"safecheck/internal/checkin/assembly"
	"safecheck/internal/checkin/form"
	"safecheck/internal/checkin/location"
	"safecheck/internal/checkin/metrics"
	"safecheck/internal/checkin/models"
	"safecheck/internal/checkin/photo"
	"safecheck/internal/checkin/presentation"
	"safecheck/internal/device/sim"
)

type AppSuite struct {
	suite.Suite
	out     bytes.Buffer
	alerts  bytes.Buffer
	shares  bytes.Buffer
	metrics *metrics.Metrics
	loc     *sim.Location
	cam     *sim.Camera
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppSuite))
}

func (s *AppSuite) SetupTest() {
	s.out.Reset()
	s.alerts.Reset()
	s.shares.Reset()
	s.metrics = metrics.New(prometheus.NewRegistry())

	s.loc = &sim.Location{
		Permission: models.PermissionGranted,
		Position:   models.Position{Latitude: 37.7749, Longitude: -122.4194},
		Address:    "Market St, San Francisco, CA",
	}
	s.cam = &sim.Camera{Permission: models.PermissionGranted, Dir: "photos"}
}

func (s *AppSuite) newApp(in io.Reader) *App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	alerter := &Alerter{Out: &s.alerts}
	now := func() time.Time { return time.Date(2026, 10, 17, 14, 30, 0, 0, time.UTC) }

	factory := func() (*form.Form, error) {
		locator, err := location.New(s.loc, location.WithClock(now), location.WithMetrics(s.metrics))
		if err != nil {
			return nil, err
		}
		capturer, err := photo.New(s.cam, alerter, photo.WithMetrics(s.metrics))
		if err != nil {
			return nil, err
		}
		return form.New(locator, capturer, assembly.New(assembly.WithClock(now)), form.WithLogger(logger))
	}

	app, err := New(in, &s.out, factory, presentation.NewRenderer("en-US", time.UTC),
		&ShareSheet{Out: &s.shares}, alerter, WithLogger(logger), WithMetrics(s.metrics))
	s.Require().NoError(err)
	return app
}

func script(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func (s *AppSuite) TestNew() {
	factory := func() (*form.Form, error) { return nil, nil }
	renderer := presentation.NewRenderer("en-US", time.UTC)

	_, err := New(nil, &s.out, factory, renderer, &ShareSheet{}, &Alerter{})
	s.Error(err)
	_, err = New(strings.NewReader(""), &s.out, nil, renderer, &ShareSheet{}, &Alerter{})
	s.Error(err)
	_, err = New(strings.NewReader(""), &s.out, factory, nil, &ShareSheet{}, &Alerter{})
	s.Error(err)
	_, err = New(strings.NewReader(""), &s.out, factory, renderer, nil, &Alerter{})
	s.Error(err)
	_, err = New(strings.NewReader(""), &s.out, factory, renderer, &ShareSheet{}, nil)
	s.Error(err)
}

func (s *AppSuite) TestFullCheckInAndShare() {
	app := s.newApp(script(
		"1",
		"1", "1",
		"2", "All good",
		"4",
		"6", "y",
		"1",
		"3",
		"q",
	))

	s.Require().NoError(app.Run(context.Background()))

	out := s.out.String()
	s.Contains(out, "Location: 📍 Market St, San Francisco, CA (37.7749, -122.4194)")
	s.Contains(out, "Please confirm your check-in:")
	s.Contains(out, "Check-In Sent!")
	s.Contains(out, "Status: ✅ Safe")
	s.Contains(out, "Time: 10/17/2026, 2:30:00 PM")
	s.Contains(out, "Photo: 📸 Attached")
	s.Contains(out, "Message: All good")
	s.Contains(out, "Goodbye")

	shared := s.shares.String()
	s.Contains(shared, "SafeCheck Update: ✅ Safe")
	s.Contains(shared, "Location: Market St, San Francisco, CA")
	s.Contains(shared, "Message: All good")
	s.Contains(shared, "Sent via SafeCheck App")

	s.Empty(s.alerts.String())
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Shares.WithLabelValues(metrics.OutcomeShared)))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.PhotoCaptures.WithLabelValues(metrics.OutcomeCaptured)))
}

func (s *AppSuite) TestSubmitWithoutStatusAlerts() {
	app := s.newApp(script("1", "6", "b", "q"))

	s.Require().NoError(app.Run(context.Background()))

	s.Contains(s.alerts.String(), "Please select a status")
	s.NotContains(s.out.String(), "Check-In Sent!")
}

func (s *AppSuite) TestStatusByTypedIdentifier() {
	app := s.newApp(script("1", "1", "emergency", "6", "y", "3", "q"))

	s.Require().NoError(app.Run(context.Background()))

	s.Contains(s.out.String(), "Status: 🚨 Emergency")
}

func (s *AppSuite) TestUnknownStatusKeepsSelection() {
	app := s.newApp(script("1", "1", "needs-help", "6", "b", "q"))

	s.Require().NoError(app.Run(context.Background()))

	s.Contains(s.alerts.String(), "That status is not recognized")
	s.Contains(s.alerts.String(), "Please select a status")
}

func (s *AppSuite) TestDeclineConfirmationReturnsToForm() {
	app := s.newApp(script("1", "1", "2", "6", "n", "b", "q"))

	s.Require().NoError(app.Run(context.Background()))

	s.Contains(s.out.String(), "Status: 🆘 Need Help")
	s.NotContains(s.out.String(), "Check-In Sent!")
}

func (s *AppSuite) TestLocationDeniedStillSubmits() {
	s.loc.Permission = models.PermissionDenied
	app := s.newApp(script("1", "1", "1", "6", "y", "3", "q"))

	s.Require().NoError(app.Run(context.Background()))

	s.Contains(s.out.String(), "Location: Location permission denied")
	s.Contains(s.out.String(), "Location: Not available")
	s.Contains(s.alerts.String(), "Permission needed")
	s.Contains(s.out.String(), "Check-In Sent!")
}

func (s *AppSuite) TestCameraDeniedAlertsOnce() {
	s.cam.Permission = models.PermissionDenied
	app := s.newApp(script("1", "4", "b", "q"))

	s.Require().NoError(app.Run(context.Background()))

	s.Equal(1, strings.Count(s.alerts.String(), photo.PermissionTitle))
	s.NotContains(s.alerts.String(), "Permission needed")
}

func (s *AppSuite) TestEndOfInputQuits() {
	app := s.newApp(script("1", "1"))

	s.NoError(app.Run(context.Background()))
	s.Contains(s.out.String(), "Goodbye")
}

func (s *AppSuite) TestCanceledContext() {
	r, w := io.Pipe()
	defer w.Close()
	app := s.newApp(r)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.Run(ctx)
	s.True(errors.Is(err, context.Canceled))
}

type failingShare struct{}

func (failingShare) Share(context.Context, string) error {
	return errors.New("share sheet closed")
}

func (s *AppSuite) TestShareFailureIsCounted() {
	app := s.newApp(script("1", "1", "1", "6", "y", "1", "3", "q"))
	app.share = failingShare{}

	s.Require().NoError(app.Run(context.Background()))

	s.Equal(1.0, testutil.ToFloat64(s.metrics.Shares.WithLabelValues(metrics.OutcomeFailed)))
}

package assembly

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"safecheck/internal/checkin/metrics"
	"safecheck/internal/checkin/models"
	dErrors "safecheck/pkg/domain-errors"
)

type AssemblerSuite struct {
	suite.Suite
	metrics   *metrics.Metrics
	submitted time.Time
	recordID  uuid.UUID
	assembler *Assembler
}

func TestAssemblerSuite(t *testing.T) {
	suite.Run(t, new(AssemblerSuite))
}

func (s *AssemblerSuite) SetupTest() {
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.submitted = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	s.recordID = uuid.MustParse("6f1c1a52-4d7e-4f0b-9a54-0b7f7d9c2e11")
	s.assembler = New(
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
		WithClock(func() time.Time { return s.submitted }),
		WithIDGenerator(func() uuid.UUID { return s.recordID }),
	)
}

func (s *AssemblerSuite) snapshot() *models.LocationSnapshot {
	acc := 15.0
	return &models.LocationSnapshot{
		Latitude:   37.7749,
		Longitude:  -122.4194,
		Address:    "San Francisco, CA",
		Accuracy:   &acc,
		AcquiredAt: s.submitted.Add(-5 * time.Minute),
	}
}

func (s *AssemblerSuite) TestMissingStatus() {
	ctx := context.Background()
	for _, status := range []string{"", "   ", "\t"} {
		s.Run(fmt.Sprintf("status %q", status), func() {
			rec, err := s.assembler.Assemble(ctx, Input{Status: status, Message: "hello", Location: s.snapshot(), Photo: "file:///a.jpg"})
			s.Nil(rec)
			s.True(dErrors.HasCode(err, dErrors.CodeMissingStatus))
		})
	}
	s.Equal(3.0, testutil.ToFloat64(s.metrics.CheckInsRejected.WithLabelValues(string(dErrors.CodeMissingStatus))))
}

func (s *AssemblerSuite) TestUnknownStatus() {
	rec, err := s.assembler.Assemble(context.Background(), Input{Status: "needs-help"})
	s.Nil(rec)
	s.True(dErrors.HasCode(err, dErrors.CodeUnknownStatus))
}

func (s *AssemblerSuite) TestInvalidLocation() {
	bad := s.snapshot()
	bad.Latitude = 91
	_, err := s.assembler.Assemble(context.Background(), Input{Status: "safe", Location: bad})
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *AssemblerSuite) TestEveryOptionalCombination() {
	ctx := context.Background()
	for _, withMessage := range []bool{false, true} {
		for _, withLocation := range []bool{false, true} {
			for _, withPhoto := range []bool{false, true} {
				name := fmt.Sprintf("message=%t location=%t photo=%t", withMessage, withLocation, withPhoto)
				s.Run(name, func() {
					in := Input{Status: "traveling"}
					if withMessage {
						in.Message = "Boarding now"
					}
					if withLocation {
						in.Location = s.snapshot()
					}
					if withPhoto {
						in.Photo = "file:///photos/gate.jpg"
					}

					rec, err := s.assembler.Assemble(ctx, in)
					s.Require().NoError(err)
					s.Equal(models.StatusTraveling, rec.Status().ID)

					msg, hasMsg := rec.Message()
					s.Equal(withMessage, hasMsg)
					s.Equal(in.Message, msg)

					_, hasPhoto := rec.Photo()
					s.Equal(withPhoto, hasPhoto)
					s.Equal(withLocation, rec.Location() != nil)
				})
			}
		}
	}
	s.Equal(8.0, testutil.ToFloat64(s.metrics.CheckInsAssembled.WithLabelValues("traveling")))
}

func (s *AssemblerSuite) TestTimestamps() {
	snap := s.snapshot()
	rec, err := s.assembler.Assemble(context.Background(), Input{Status: "safe", Location: snap})
	s.Require().NoError(err)

	s.Equal(s.submitted, rec.CreatedAt())
	s.Equal(snap.AcquiredAt, rec.Location().AcquiredAt)
	s.NotEqual(rec.CreatedAt(), rec.Location().AcquiredAt)
	s.Equal(s.recordID, rec.ID())
}

func (s *AssemblerSuite) TestMessageKeptVerbatim() {
	msg := "  Running late\nwill call at 6  "
	rec, err := s.assembler.Assemble(context.Background(), Input{Status: "safe", Message: msg})
	s.Require().NoError(err)
	got, ok := rec.Message()
	s.True(ok)
	s.Equal(msg, got)
}

func (s *AssemblerSuite) TestDefaultsWithoutOptions() {
	rec, err := New().Assemble(context.Background(), Input{Status: "arrived"})
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, rec.ID())
	s.False(rec.CreatedAt().IsZero())
}

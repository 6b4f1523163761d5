package photo

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"safecheck/internal/checkin/metrics"
	"safecheck/internal/checkin/models"
	"safecheck/internal/checkin/ports/mocks"
	dErrors "safecheck/pkg/domain-errors"
	"safecheck/pkg/platform/sentinel"
)

type CapturerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCamera  *mocks.MockCamera
	mockAlerter *mocks.MockAlerter
	metrics     *metrics.Metrics
	capturer    *Capturer
}

func TestCapturerSuite(t *testing.T) {
	suite.Run(t, new(CapturerSuite))
}

func (s *CapturerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCamera = mocks.NewMockCamera(s.ctrl)
	s.mockAlerter = mocks.NewMockAlerter(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var err error
	s.capturer, err = New(s.mockCamera, s.mockAlerter, WithLogger(logger), WithMetrics(s.metrics))
	s.Require().NoError(err)
}

func (s *CapturerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CapturerSuite) TestNew() {
	s.Run("nil camera returns error", func() {
		_, err := New(nil, s.mockAlerter)
		s.Error(err)
		s.Contains(err.Error(), "camera is required")
	})

	s.Run("nil alerter returns error", func() {
		_, err := New(s.mockCamera, nil)
		s.Error(err)
		s.Contains(err.Error(), "alerter is required")
	})
}

func (s *CapturerSuite) TestCapture() {
	ctx := context.Background()
	first := models.PhotoReference("file:///photos/first.jpg")
	second := models.PhotoReference("file:///photos/second.jpg")

	s.Run("first capture attaches the photo", func() {
		s.mockCamera.EXPECT().RequestPermission(gomock.Any()).Return(models.PermissionGranted, nil)
		s.mockCamera.EXPECT().Capture(gomock.Any()).Return(first, nil)

		got, err := s.capturer.Capture(ctx, "")
		s.Require().NoError(err)
		s.Equal(first, got)
	})

	s.Run("retake replaces the photo", func() {
		s.mockCamera.EXPECT().RequestPermission(gomock.Any()).Return(models.PermissionGranted, nil)
		s.mockCamera.EXPECT().Capture(gomock.Any()).Return(second, nil)

		got, err := s.capturer.Capture(ctx, first)
		s.Require().NoError(err)
		s.Equal(second, got)
		s.Equal(2.0, testutil.ToFloat64(s.metrics.PhotoCaptures.WithLabelValues(metrics.OutcomeCaptured)))
	})

	s.Run("failed retake keeps the existing photo", func() {
		s.mockCamera.EXPECT().RequestPermission(gomock.Any()).Return(models.PermissionGranted, nil)
		s.mockCamera.EXPECT().Capture(gomock.Any()).Return(models.PhotoReference(""), sentinel.ErrUnavailable)

		got, err := s.capturer.Capture(ctx, first)
		s.True(dErrors.HasCode(err, dErrors.CodeCaptureFailed))
		s.Equal(first, got)
	})

	s.Run("empty reference counts as a failed capture", func() {
		s.mockCamera.EXPECT().RequestPermission(gomock.Any()).Return(models.PermissionGranted, nil)
		s.mockCamera.EXPECT().Capture(gomock.Any()).Return(models.PhotoReference(""), nil)

		got, err := s.capturer.Capture(ctx, first)
		s.True(dErrors.HasCode(err, dErrors.CodeCaptureFailed))
		s.Equal(first, got)
	})

	s.Run("denied permission prompts the user", func() {
		s.mockCamera.EXPECT().RequestPermission(gomock.Any()).Return(models.PermissionDenied, nil)
		s.mockAlerter.EXPECT().Alert(gomock.Any(), PermissionTitle, PermissionMessage).Return(nil)

		got, err := s.capturer.Capture(ctx, first)
		s.True(dErrors.HasCode(err, dErrors.CodePermissionDenied))
		s.Equal(first, got)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.PhotoCaptures.WithLabelValues(metrics.OutcomeDenied)))
	})

	s.Run("prompt failure still reports permission denied", func() {
		s.mockCamera.EXPECT().RequestPermission(gomock.Any()).Return(models.PermissionUndetermined, sentinel.ErrDenied)
		s.mockAlerter.EXPECT().Alert(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

		got, err := s.capturer.Capture(ctx, "")
		s.True(dErrors.HasCode(err, dErrors.CodePermissionDenied))
		s.True(got.IsZero())
	})

	s.Run("permission request error is a capture failure", func() {
		s.mockCamera.EXPECT().RequestPermission(gomock.Any()).Return(models.PermissionUndetermined, assert.AnError)

		got, err := s.capturer.Capture(ctx, second)
		s.True(dErrors.HasCode(err, dErrors.CodeCaptureFailed))
		s.Equal(second, got)
	})
}

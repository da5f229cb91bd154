package leadform

import (
	"testing"

	"hersalon/pkg/types"

	"github.com/stretchr/testify/assert"
)

func validRequest() types.ApplicationRequest {
	return types.ApplicationRequest{
		FullName:  "Dana Levi",
		Phone:     "0501234567",
		Email:     "dana@test.com",
		CanAttend: true,
	}
}

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *types.ApplicationRequest)
		status types.SubmissionStatus
		want   bool
	}{
		{"valid idle", func(r *types.ApplicationRequest) {}, types.SubmissionIdle, true},
		{"valid after error", func(r *types.ApplicationRequest) {}, types.SubmissionError, true},
		{"valid after sent", func(r *types.ApplicationRequest) {}, types.SubmissionSent, true},
		{"valid while sending", func(r *types.ApplicationRequest) {}, types.SubmissionSending, false},
		{"name too short", func(r *types.ApplicationRequest) { r.FullName = "D" }, types.SubmissionIdle, false},
		{"name padded to two", func(r *types.ApplicationRequest) { r.FullName = "  D  " }, types.SubmissionIdle, false},
		{"name exactly two", func(r *types.ApplicationRequest) { r.FullName = " Di " }, types.SubmissionIdle, true},
		{"hebrew name", func(r *types.ApplicationRequest) { r.FullName = "דנה" }, types.SubmissionIdle, true},
		{"phone seven", func(r *types.ApplicationRequest) { r.Phone = "0501234" }, types.SubmissionIdle, false},
		{"phone eight", func(r *types.ApplicationRequest) { r.Phone = "05012345" }, types.SubmissionIdle, true},
		{"phone padded", func(r *types.ApplicationRequest) { r.Phone = "   0501234   " }, types.SubmissionIdle, false},
		{"phone any text", func(r *types.ApplicationRequest) { r.Phone = "call me!" }, types.SubmissionIdle, true},
		{"email no at", func(r *types.ApplicationRequest) { r.Email = "dana.test.com" }, types.SubmissionIdle, false},
		{"email no dot", func(r *types.ApplicationRequest) { r.Email = "dana@test" }, types.SubmissionIdle, false},
		{"email inner space", func(r *types.ApplicationRequest) { r.Email = "da na@test.com" }, types.SubmissionIdle, false},
		{"email surrounding space", func(r *types.ApplicationRequest) { r.Email = "  dana@test.com " }, types.SubmissionIdle, true},
		{"email empty", func(r *types.ApplicationRequest) { r.Email = "" }, types.SubmissionIdle, false},
		{"cannot attend", func(r *types.ApplicationRequest) { r.CanAttend = false }, types.SubmissionIdle, false},
		{"empty", func(r *types.ApplicationRequest) { *r = types.ApplicationRequest{} }, types.SubmissionIdle, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			assert.Equal(t, tt.want, CanSubmit(req, tt.status))
		})
	}
}

func TestCanSubmitIsStable(t *testing.T) {
	req := validRequest()
	for range 10 {
		assert.True(t, CanSubmit(req, types.SubmissionIdle))
	}

	req.FullName = "D"
	for range 10 {
		assert.False(t, CanSubmit(req, types.SubmissionIdle))
	}
}

func TestProblems(t *testing.T) {
	assert.Empty(t, Problems(validRequest()))

	assert.Equal(t,
		[]Field{FieldFullName, FieldPhone, FieldEmail, FieldCanAttend},
		Problems(types.ApplicationRequest{}),
	)

	req := validRequest()
	req.CanAttend = false
	assert.Equal(t, []Field{FieldCanAttend}, Problems(req))
}

package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik-mahalle/calendrical/pkg/datetime"
)

func TestFromDomain(t *testing.T) {
	_, parseErr := datetime.ParseLocalDate("2021-02-30")
	_, zoneErr := datetime.NewZones(nil).Of("X")
	_, arithErr := datetime.MaxLocalDate.Plus(1, datetime.UnitDay)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "illegal argument", err: parseErr, wantStatus: http.StatusBadRequest, wantCode: ErrCodeIllegalArgument},
		{name: "illegal time zone", err: zoneErr, wantStatus: http.StatusBadRequest, wantCode: ErrCodeIllegalTimeZone},
		{name: "arithmetic", err: arithErr, wantStatus: http.StatusUnprocessableEntity, wantCode: ErrCodeArithmetic},
		{name: "wrapped arithmetic", err: fmt.Errorf("adding: %w", arithErr), wantStatus: http.StatusUnprocessableEntity, wantCode: ErrCodeArithmetic},
		{name: "unknown", err: stderrors.New("disk on fire"), wantStatus: http.StatusInternalServerError, wantCode: ErrCodeInternal},
		{name: "already mapped", err: BadRequest("nope"), wantStatus: http.StatusBadRequest, wantCode: ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			appErr := FromDomain(tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantStatus, appErr.StatusCode)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.ErrorIs(t, appErr, tt.err)
		})
	}

	assert.Nil(t, FromDomain(nil))
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "boom", New(ErrCodeInternal, "boom", 500).Error())
	assert.Equal(t, "boom: cause", Internal("boom", stderrors.New("cause")).Error())
}

func TestFromDomain_WrappedSentinelKeepsContext(t *testing.T) {
	err := fmt.Errorf("%w: either unit or period is required", datetime.ErrIllegalArgument)
	appErr := FromDomain(err)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, "illegal argument: either unit or period is required", appErr.Message)
}

package mood

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestManualLookupState(t *testing.T) {
	dbDown := errors.New("connection refused")

	tests := []struct {
		name      string
		err       error
		wantFound bool
		wantFail  error
	}{
		{"entry found", nil, true, nil},
		{"no entry for the day", gorm.ErrRecordNotFound, false, nil},
		{"wrapped not-found", fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), false, nil},
		// A real database failure must surface, not pass as "no entry".
		{"database failure", dbDown, false, dbDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, fail := manualLookupState(tt.err)
			if found != tt.wantFound || !errors.Is(fail, tt.wantFail) {
				t.Errorf("manualLookupState(%v) = (%v, %v), want (%v, %v)", tt.err, found, fail, tt.wantFound, tt.wantFail)
			}
		})
	}
}

package errors

import "testing"

func TestValidatePayloadSize(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		max     int
		wantErr bool
	}{
		{"under limit", 10, 100, false},
		{"at limit", 100, 100, false},
		{"over limit", 101, 100, true},
		{"disabled", 1 << 30, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayloadSize(tt.size, tt.max)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePayloadSize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInputTooLarge) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInputTooLarge)
			}
		})
	}
}

func TestValidateCount(t *testing.T) {
	if err := ValidateCount("vertices", 3, 10); err != nil {
		t.Errorf("ValidateCount() error = %v", err)
	}
	err := ValidateCount("segments", 11, 10)
	if err == nil {
		t.Fatal("ValidateCount() = nil, want error")
	}
	if got := UserMessage(err); got != "too many segments: 11 (max 10)" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestValidateToolName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "encode_vector_network", false},
		{"digits", "tool2", false},
		{"empty", "", true},
		{"uppercase", "Encode", true},
		{"dash", "encode-network", true},
		{"control", "enc\x00ode", true},
		{"leading digit", "2tool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateToolName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateToolName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCacheKeyPrefix(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"vecnet:", false},
		{"user:123:", false},
		{"has space", true},
		{"glob*", true},
	}

	for _, tt := range tests {
		err := ValidateCacheKeyPrefix(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateCacheKeyPrefix(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

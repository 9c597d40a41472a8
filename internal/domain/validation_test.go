package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(decimal.NewFromInt(1)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateAmount(decimal.NewFromFloat(0.01)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateAmount(decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}

	if err := ValidateAmount(decimal.NewFromInt(-1)); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestValidateID(t *testing.T) {
	if err := ValidateID("account ID", "acc-1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	for _, id := range []string{"", "   ", "\t"} {
		if err := ValidateID("account ID", id); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("id %q: expected ErrInvalidArgument, got %v", id, err)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "jordan.reyes@example.com", "x+tag@sub.example.org"}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("email %q: unexpected error: %v", email, err)
		}
	}

	invalid := []string{"", "   ", "nodomain", "a@b", "a b@c.d", "@example.com"}
	for _, email := range invalid {
		if err := ValidateEmail(email); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("email %q: expected ErrInvalidArgument, got %v", email, err)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"", "  ", "+1 416 555 0100", "416-555-0100", "0100"}
	for _, phone := range valid {
		if err := ValidatePhone(phone); err != nil {
			t.Errorf("phone %q: unexpected error: %v", phone, err)
		}
	}

	invalid := []string{"call me", "555-CALL", "(416) 555-0100"}
	for _, phone := range invalid {
		if err := ValidatePhone(phone); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("phone %q: expected ErrInvalidArgument, got %v", phone, err)
		}
	}
}

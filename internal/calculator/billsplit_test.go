package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name         string
		input        SplitInput
		wantErr      error
		validateFunc func(t *testing.T, result *SplitResult)
	}{
		{
			name:  "equal three-way split rounds per person",
			input: SplitInput{TotalAmount: 100, PersonCount: 3},
			validateFunc: func(t *testing.T, result *SplitResult) {
				if result.Type != "equal" {
					t.Errorf("type = %q, want equal", result.Type)
				}
				if result.AmountPerPerson != 33.33 {
					t.Errorf("amountPerPerson = %v, want 33.33", result.AmountPerPerson)
				}
				if result.Subtotal != 100.00 {
					t.Errorf("subtotal = %v, want 100.00", result.Subtotal)
				}
				if result.TipAmount != 0 || result.TaxAmount != 0 {
					t.Errorf("tip/tax = %v/%v, want 0/0", result.TipAmount, result.TaxAmount)
				}
				if len(result.Shares) != 3 {
					t.Fatalf("shares = %d, want 3", len(result.Shares))
				}
				for _, share := range result.Shares {
					if share.Amount != 33.33 {
						t.Errorf("person %d amount = %v, want 33.33", share.Person, share.Amount)
					}
				}
			},
		},
		{
			name:  "tip and tax come out of the total",
			input: SplitInput{TotalAmount: 100, PersonCount: 2, TipPercentage: 10, TaxPercentage: 5},
			validateFunc: func(t *testing.T, result *SplitResult) {
				if result.TipAmount != 10.00 {
					t.Errorf("tipAmount = %v, want 10.00", result.TipAmount)
				}
				if result.TaxAmount != 5.00 {
					t.Errorf("taxAmount = %v, want 5.00", result.TaxAmount)
				}
				if result.Subtotal != 85.00 {
					t.Errorf("subtotal = %v, want 85.00", result.Subtotal)
				}
				if result.AmountPerPerson != 50.00 {
					t.Errorf("amountPerPerson = %v, want 50.00", result.AmountPerPerson)
				}
			},
		},
		{
			name:  "custom amounts report imbalance",
			input: SplitInput{TotalAmount: 100, PersonCount: 2, CustomAmounts: []float64{40, 65}},
			validateFunc: func(t *testing.T, result *SplitResult) {
				if result.Type != "custom" {
					t.Errorf("type = %q, want custom", result.Type)
				}
				if result.Difference != -5.00 {
					t.Errorf("difference = %v, want -5.00", result.Difference)
				}
				if result.IsBalanced {
					t.Error("isBalanced = true, want false")
				}
				if result.Shares[0].Percentage != 40.00 {
					t.Errorf("person 1 percentage = %v, want 40.00", result.Shares[0].Percentage)
				}
				if result.Shares[1].Percentage != 65.00 {
					t.Errorf("person 2 percentage = %v, want 65.00", result.Shares[1].Percentage)
				}
			},
		},
		{
			name:  "balanced custom amounts",
			input: SplitInput{TotalAmount: 100, PersonCount: 2, CustomAmounts: []float64{60, 40}},
			validateFunc: func(t *testing.T, result *SplitResult) {
				if !result.IsBalanced {
					t.Errorf("isBalanced = false (difference %v), want true", result.Difference)
				}
			},
		},
		{
			name:  "custom amounts with wrong length fall back to equal",
			input: SplitInput{TotalAmount: 90, PersonCount: 3, CustomAmounts: []float64{45, 45}},
			validateFunc: func(t *testing.T, result *SplitResult) {
				if result.Type != "equal" {
					t.Errorf("type = %q, want equal", result.Type)
				}
				if result.AmountPerPerson != 30.00 {
					t.Errorf("amountPerPerson = %v, want 30.00", result.AmountPerPerson)
				}
			},
		},
		{
			name:    "zero total rejected",
			input:   SplitInput{TotalAmount: 0, PersonCount: 2},
			wantErr: ErrInvalidTotal,
		},
		{
			name:    "zero person count rejected",
			input:   SplitInput{TotalAmount: 50, PersonCount: 0},
			wantErr: ErrInvalidPersonCount,
		},
		{
			name:    "tip over 100 rejected",
			input:   SplitInput{TotalAmount: 50, PersonCount: 2, TipPercentage: 150},
			wantErr: ErrInvalidPercentage,
		},
		{
			name:    "negative tax rejected",
			input:   SplitInput{TotalAmount: 50, PersonCount: 2, TaxPercentage: -1},
			wantErr: ErrInvalidPercentage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Calculate(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Calculate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Calculate() error = %v", err)
			}
			tt.validateFunc(t, result)
		})
	}
}

func TestCalculateIsPure(t *testing.T) {
	input := SplitInput{TotalAmount: 123.45, PersonCount: 7, TipPercentage: 12.5}
	first, err := Calculate(input)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Calculate(input)
		if err != nil {
			t.Fatalf("Calculate() error = %v", err)
		}
		if math.Abs(again.AmountPerPerson-first.AmountPerPerson) > 1e-9 {
			t.Fatalf("Calculate not deterministic: %v vs %v", again.AmountPerPerson, first.AmountPerPerson)
		}
	}
}

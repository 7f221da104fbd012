package format

import (
	"testing"
	"time"
)

func TestHumanNumber(t *testing.T) {
	type testCase struct {
		input    uint64
		expected string
	}

	testCases := []testCase{
		{0, "0"},
		{1000000, "1.00M"},
		{125000000, "125M"},
		{500500, "500K"},
		{50500, "50.5K"},
		{1700000000, "1.70B"},
		{1000000000000, "1.00T"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			result := HumanNumber(tc.input)
			if result != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, result)
			}
		})
	}
}

func TestHumanCUPS(t *testing.T) {
	if got := HumanCUPS(2000000, time.Second); got != "2.00M CUPS" {
		t.Errorf("got %s", got)
	}
	if got := HumanCUPS(100, 0); got != "-" {
		t.Errorf("got %s", got)
	}
}

func TestHumanBytes(t *testing.T) {
	type testCase struct {
		input    int64
		expected string
	}

	testCases := []testCase{
		{0, "0 B"},
		{1024, "1.0 KB"},
		{1100000, "1.1 MB"},
		{1024 * 1024 * 1024, "1.1 GB"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			result := HumanBytes(tc.input)
			if result != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, result)
			}
		})
	}
}

package main

import (
	"testing"

	"github.com/trstruth/masuda/pkg/pokemon"
)

func TestParseArgs(t *testing.T) {
	pid, profile, err := parseArgs([]string{"0x5FE348AF", "10101", "12345"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if pid != 0x5fe348af {
		t.Errorf("pid = %#x", pid)
	}
	if profile == nil || *profile != pokemon.NewProfile(10101, 12345) {
		t.Errorf("profile = %v", profile)
	}

	pid, profile, err = parseArgs([]string{"7e482751"})
	if err != nil || pid != 2118657873 || profile != nil {
		t.Errorf("parseArgs(pid only) = %#x, %v, %v", pid, profile, err)
	}
}

func TestParseArgsInvalid(t *testing.T) {
	tests := [][]string{
		nil,
		{"abc", "1"},
		{"xyz"},
		{"100000000"},
		{"abc", "70000", "1"},
		{"abc", "1", "-1"},
	}
	for _, args := range tests {
		if _, _, err := parseArgs(args); err == nil {
			t.Errorf("parseArgs(%q) succeeded", args)
		}
	}
}

func TestReportOutput(t *testing.T) {
	_, profile, _ := parseArgs([]string{"5fe348af", "10101", "12345"})
	got := pokemon.Describe(0x5fe348af, profile).String()
	want := "nature: Quirky\nability: 1\ngender (50/50): Male\nshiny: true\n"
	if got != want {
		t.Fatalf("report = %q, want %q", got, want)
	}
}

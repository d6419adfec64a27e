package fpu

import "testing"

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in   string
		want Backend
		ok   bool
	}{
		{"custom", BackendCustom, true},
		{"Soft", BackendSoft, true},
		{" softfp ", BackendSoft, true},
		{"hw", BackendCustom, true},
		{"fpu", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseBackend(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseBackend(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBackendString(t *testing.T) {
	if got := BackendCustom.String(); got != "custom" {
		t.Errorf("BackendCustom.String() = %q", got)
	}
	if got := BackendSoft.String(); got != "soft" {
		t.Errorf("BackendSoft.String() = %q", got)
	}
	if got := Backend(42).String(); got != "unknown" {
		t.Errorf("Backend(42).String() = %q", got)
	}
	if CurrentName() != CurrentBackend().String() {
		t.Errorf("CurrentName() = %q, CurrentBackend() = %v", CurrentName(), CurrentBackend())
	}
}

func TestBackendEnv(t *testing.T) {
	t.Setenv(BackendEnvVar, "soft")
	if b, ok := BackendEnv(); !ok || b != BackendSoft {
		t.Errorf("BackendEnv() = %v, %v; want soft, true", b, ok)
	}
	t.Setenv(BackendEnvVar, "bogus")
	if _, ok := BackendEnv(); ok {
		t.Errorf("BackendEnv() accepted a bogus value")
	}
}

package models

import (
	"errors"
	"testing"
)

func validConfig() *Config {
	return &Config{
		TlbReplacement:  "LRU",
		PageReplacement: "CLOCK",
		FrameAllocation: "GLOBAL",
		ProcessCount:    2,
		PagesPerProcess: 16,
		FrameCount:      4,
	}
}

func TestConfigSettings_Defaults(t *testing.T) {
	settings, err := validConfig().Settings()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if settings.TLBPolicy != TLBLRU || settings.PagePolicy != PageClock || settings.FramePolicy != FrameGlobal {
		t.Errorf("Unexpected policies: %v %v %v", settings.TLBPolicy, settings.PagePolicy, settings.FramePolicy)
	}
	if settings.TLBEntries != DefaultTLBEntries {
		t.Errorf("Expected default TLB entries %d, got %d", DefaultTLBEntries, settings.TLBEntries)
	}
	if settings.DiskBlocks != DefaultDiskBlocks {
		t.Errorf("Expected default disk blocks %d, got %d", DefaultDiskBlocks, settings.DiskBlocks)
	}
}

func TestConfigSettings_UnknownPolicy(t *testing.T) {
	config := validConfig()
	config.PageReplacement = "OPTIMAL"

	_, err := config.Settings()
	if !errors.Is(err, ErrInvalidPolicy) {
		t.Errorf("Expected ErrInvalidPolicy, got %v", err)
	}
}

func TestConfigSettings_InvalidCounts(t *testing.T) {
	config := validConfig()
	config.FrameCount = 0
	if _, err := config.Settings(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for zero frames, got %v", err)
	}

	config = validConfig()
	config.ProcessCount = MaxProcesses + 1
	if _, err := config.Settings(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for too many processes, got %v", err)
	}

	config = validConfig()
	config.DiskBlocks = 10 // 2 procesos * 16 páginas no entran
	if _, err := config.Settings(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for small disk, got %v", err)
	}
}

func TestParsePolicies_CaseInsensitive(t *testing.T) {
	if policy, err := ParseTLBPolicy(" random "); err != nil || policy != TLBRandom {
		t.Errorf("Expected RANDOM, got %v (err %v)", policy, err)
	}
	if policy, err := ParseFramePolicy("local"); err != nil || policy != FrameLocal {
		t.Errorf("Expected LOCAL, got %v (err %v)", policy, err)
	}
	if PageClock.String() != "CLOCK" || TLBRandom.String() != "RANDOM" || FrameGlobal.String() != "GLOBAL" {
		t.Errorf("Unexpected policy names")
	}
}

func TestEventString(t *testing.T) {
	hit := Event{Kind: EventTLBHit, PID: 0, VPN: 3, Frame: 1}
	if got := hit.String(); got != "Process A, TLB Hit, 3=>1" {
		t.Errorf("Unexpected TLB hit line: %q", got)
	}

	pageHit := Event{Kind: EventPageHit, PID: 1, VPN: 7, Frame: 2}
	if got := pageHit.String(); got != "Process B, TLB Miss, Page Hit, 7=>2" {
		t.Errorf("Unexpected page hit line: %q", got)
	}

	fault := Event{Kind: EventPageFault, PID: 0, VPN: 2, Frame: 0, VictimPID: 1, VictimVPN: 5, EvictedTo: 3, LoadedFrom: -1}
	if got := fault.String(); got != "Process A, TLB Miss, Page Fault, 0, Evict 5 of Process B to 3, 2<<-1" {
		t.Errorf("Unexpected fault line: %q", got)
	}
	if !fault.HasVictim() {
		t.Errorf("Expected fault to have a victim")
	}

	coldFault := Event{Kind: EventPageFault, PID: 2, VPN: 9, Frame: 4, VictimPID: 2, VictimVPN: -1, EvictedTo: -1, LoadedFrom: -1}
	if got := coldFault.String(); got != "Process C, TLB Miss, Page Fault, 4, Evict -1 of Process C to -1, 9<<-1" {
		t.Errorf("Unexpected cold fault line: %q", got)
	}
	if coldFault.HasVictim() {
		t.Errorf("Expected cold fault without victim")
	}
}

func TestProcessID(t *testing.T) {
	pid, err := ProcessID('C')
	if err != nil || pid != 2 {
		t.Errorf("Expected pid 2, got %d (err %v)", pid, err)
	}
	if ProcessLetter(pid) != 'C' {
		t.Errorf("Expected letter C, got %c", ProcessLetter(pid))
	}

	if _, err := ProcessID('a'); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("Expected ErrInvalidReference for lowercase letter, got %v", err)
	}
}

package models

import "fmt"

type PageTableEntry struct {
	Slot    int // frame si Present, bloque de disco o NoSlot si no
	Present bool
}

type TLBEntry struct {
	VPN int
	PFN int
}

// Frame es el ocupante actual de un frame físico.
type Frame struct {
	PID        int
	VPN        int
	Number     int
	Referenced bool
}

type Reference struct {
	PID int
	VPN int
}

type Metrics struct {
	References int
	TLBLookups int
	TLBHits    int
	PageFaults int
}

type ProcessSummary struct {
	PID                 int
	Metrics             Metrics
	HitRatio            float64
	FaultRate           float64
	EffectiveAccessTime float64
	HasData             bool
}

type EventKind int

const (
	EventTLBHit EventKind = iota
	EventPageHit
	EventPageFault
)

// Event describe el resultado de una referencia. Para EventPageFault sin víctima,
// VictimVPN y EvictedTo valen -1 y VictimPID es el proceso que generó el fallo.
type Event struct {
	Kind       EventKind
	PID        int
	VPN        int
	Frame      int
	VictimPID  int
	VictimVPN  int
	EvictedTo  int
	LoadedFrom int
}

func (e Event) HasVictim() bool {
	return e.Kind == EventPageFault && e.VictimVPN != -1
}

func (e Event) String() string {
	switch e.Kind {
	case EventTLBHit:
		return fmt.Sprintf("Process %c, TLB Hit, %d=>%d", ProcessLetter(e.PID), e.VPN, e.Frame)
	case EventPageHit:
		return fmt.Sprintf("Process %c, TLB Miss, Page Hit, %d=>%d", ProcessLetter(e.PID), e.VPN, e.Frame)
	default:
		return fmt.Sprintf("Process %c, TLB Miss, Page Fault, %d, Evict %d of Process %c to %d, %d<<%d",
			ProcessLetter(e.PID), e.Frame, e.VictimVPN, ProcessLetter(e.VictimPID), e.EvictedTo, e.VPN, e.LoadedFrom)
	}
}

// ProcessLetter traduce un PID a su letra: 0 => 'A'.
func ProcessLetter(pid int) rune {
	return rune('A' + pid)
}

// ProcessID traduce la letra de un proceso a su PID: 'A' => 0.
func ProcessID(letter rune) (int, error) {
	if letter < 'A' || letter >= 'A'+MaxProcesses {
		return -1, fmt.Errorf("%w: proceso %q", ErrInvalidReference, letter)
	}
	return int(letter - 'A'), nil
}

package models

import (
	"fmt"
	"strings"
)

type TLBPolicy int

const (
	TLBLRU TLBPolicy = iota
	TLBRandom
)

type PagePolicy int

const (
	PageFIFO PagePolicy = iota
	PageClock
)

type FramePolicy int

const (
	FrameLocal FramePolicy = iota
	FrameGlobal
)

func ParseTLBPolicy(value string) (TLBPolicy, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "LRU":
		return TLBLRU, nil
	case "RANDOM":
		return TLBRandom, nil
	}
	return 0, fmt.Errorf("%w: TLB %q (se espera LRU o RANDOM)", ErrInvalidPolicy, value)
}

func (p TLBPolicy) String() string {
	if p == TLBRandom {
		return "RANDOM"
	}
	return "LRU"
}

func ParsePagePolicy(value string) (PagePolicy, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "FIFO":
		return PageFIFO, nil
	case "CLOCK":
		return PageClock, nil
	}
	return 0, fmt.Errorf("%w: reemplazo de páginas %q (se espera FIFO o CLOCK)", ErrInvalidPolicy, value)
}

func (p PagePolicy) String() string {
	if p == PageClock {
		return "CLOCK"
	}
	return "FIFO"
}

func ParseFramePolicy(value string) (FramePolicy, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "LOCAL":
		return FrameLocal, nil
	case "GLOBAL":
		return FrameGlobal, nil
	}
	return 0, fmt.Errorf("%w: asignación de frames %q (se espera LOCAL o GLOBAL)", ErrInvalidPolicy, value)
}

func (p FramePolicy) String() string {
	if p == FrameGlobal {
		return "GLOBAL"
	}
	return "LOCAL"
}

// Settings es la configuración ya validada con la que trabaja el núcleo del simulador.
type Settings struct {
	TLBPolicy   TLBPolicy
	PagePolicy  PagePolicy
	FramePolicy FramePolicy
	Processes   int
	Pages       int
	Frames      int
	TLBEntries  int
	DiskBlocks  int
	RandomSeed  int64
}

// Settings traduce las políticas del config a sus enums y valida las cantidades.
// tlb_entries y disk_blocks en 0 toman los valores por defecto.
func (c *Config) Settings() (Settings, error) {
	tlbPolicy, err := ParseTLBPolicy(c.TlbReplacement)
	if err != nil {
		return Settings{}, err
	}
	pagePolicy, err := ParsePagePolicy(c.PageReplacement)
	if err != nil {
		return Settings{}, err
	}
	framePolicy, err := ParseFramePolicy(c.FrameAllocation)
	if err != nil {
		return Settings{}, err
	}

	settings := Settings{
		TLBPolicy:   tlbPolicy,
		PagePolicy:  pagePolicy,
		FramePolicy: framePolicy,
		Processes:   c.ProcessCount,
		Pages:       c.PagesPerProcess,
		Frames:      c.FrameCount,
		TLBEntries:  c.TlbEntries,
		DiskBlocks:  c.DiskBlocks,
		RandomSeed:  c.RandomSeed,
	}
	if settings.TLBEntries == 0 {
		settings.TLBEntries = DefaultTLBEntries
	}
	if settings.DiskBlocks == 0 {
		settings.DiskBlocks = DefaultDiskBlocks
	}

	return settings, settings.Validate()
}

// Validate verifica que las cantidades permitan una simulación sin agotar recursos.
func (s Settings) Validate() error {
	switch {
	case s.Processes <= 0 || s.Processes > MaxProcesses:
		return fmt.Errorf("%w: process_count debe estar entre 1 y %d, se recibió %d", ErrInvalidConfig, MaxProcesses, s.Processes)
	case s.Pages <= 0:
		return fmt.Errorf("%w: pages_per_process debe ser positivo, se recibió %d", ErrInvalidConfig, s.Pages)
	case s.Frames <= 0:
		return fmt.Errorf("%w: frame_count debe ser positivo, se recibió %d", ErrInvalidConfig, s.Frames)
	case s.TLBEntries <= 0:
		return fmt.Errorf("%w: tlb_entries debe ser positivo, se recibió %d", ErrInvalidConfig, s.TLBEntries)
	case s.DiskBlocks < s.Processes*s.Pages:
		// Cada página no residente ocupa a lo sumo un bloque
		return fmt.Errorf("%w: disk_blocks (%d) no alcanza para %d páginas", ErrInvalidConfig, s.DiskBlocks, s.Processes*s.Pages)
	}
	return nil
}

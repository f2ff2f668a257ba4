package models

import "errors"

// Config refleja el archivo simulador.json. Las políticas llegan como texto y se
// traducen una única vez a Settings.
type Config struct {
	TlbReplacement  string `json:"tlb_replacement"`
	PageReplacement string `json:"page_replacement"`
	FrameAllocation string `json:"frame_allocation"`
	ProcessCount    int    `json:"process_count"`
	PagesPerProcess int    `json:"pages_per_process"`
	FrameCount      int    `json:"frame_count"`
	TlbEntries      int    `json:"tlb_entries"`
	DiskBlocks      int    `json:"disk_blocks"`
	RandomSeed      int64  `json:"random_seed"`
	LogLevel        string `json:"log_level"`
	TracePath       string `json:"trace_path"`
	OutputPath      string `json:"output_path"`
	AnalysisPath    string `json:"analysis_path"`
	DumpPath        string `json:"dump_path"`
}

const (
	DefaultTLBEntries = 32
	DefaultDiskBlocks = 1024
	MaxProcesses      = 26

	// Tiempos en ns usados para el Effective Access Time
	TLBLookupTime   = 20.0
	MemoryCycleTime = 100.0

	// Valor de PageTableEntry.Slot para una página que nunca fue desalojada
	NoSlot = -1
)

// DEFINICION DE ERRORES
var (
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrInvalidPolicy     = errors.New("unknown policy")
	ErrInvalidReference  = errors.New("invalid reference")
	ErrDiskFull          = errors.New("no free disk blocks")
	ErrBlockNotAllocated = errors.New("disk block not allocated")
	ErrFrameOverflow     = errors.New("frame pool exceeded configured capacity")
	ErrDomainEmpty       = errors.New("allocation domain has no frames to evict")
)

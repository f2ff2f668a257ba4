package services

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/sisoputnfrba/tp-simulador-tlb/simulador/models"
)

// Simulator es el estado completo de una simulación: TLB, tablas de páginas, pool de
// frames, disco y contadores por proceso. Procesa las referencias de a una y en orden.
type Simulator struct {
	settings   models.Settings
	tlb        *TLB
	pageTable  *PageTable
	frames     *FrameAllocator
	disk       *DiskManager
	metrics    []models.Metrics
	previousID int
	out        io.Writer
}

// NewSimulator arma el estado inicial. Los eventos se escriben en out, una línea por
// evento; out puede ser nil si solo interesan los eventos devueltos.
func NewSimulator(settings models.Settings, out io.Writer) *Simulator {
	seed := settings.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if out == nil {
		out = io.Discard
	}

	return &Simulator{
		settings:   settings,
		tlb:        NewTLB(settings.TLBEntries, settings.TLBPolicy, rand.New(rand.NewSource(seed))),
		pageTable:  NewPageTable(settings.Processes, settings.Pages),
		frames:     NewFrameAllocator(settings),
		disk:       NewDiskManager(settings.DiskBlocks),
		metrics:    make([]models.Metrics, settings.Processes),
		previousID: -1,
		out:        out,
	}
}

// Run procesa la traza completa. El primer error corta la simulación.
func (s *Simulator) Run(references []models.Reference) error {
	for i, ref := range references {
		if _, err := s.Reference(ref); err != nil {
			return fmt.Errorf("referencia %d (%c, %d): %w", i+1, models.ProcessLetter(ref.PID), ref.VPN, err)
		}
	}
	return nil
}

// Reference hace pasar una referencia por TLB, tabla de páginas, frames y disco.
func (s *Simulator) Reference(ref models.Reference) ([]models.Event, error) {
	if _, err := s.pageTable.Entry(ref.PID, ref.VPN); err != nil {
		return nil, err
	}
	pid, vpn := ref.PID, ref.VPN

	// La TLB no tiene etiqueta de proceso: cada cambio de contexto la invalida
	if pid != s.previousID {
		if s.previousID != -1 {
			slog.Debug("Cambio de proceso, se vacía la TLB", "anterior", string(models.ProcessLetter(s.previousID)), "actual", string(models.ProcessLetter(pid)))
		}
		s.tlb.Flush()
		s.previousID = pid
	}
	s.metrics[pid].References++

	if frame, hit := s.tlbLookup(pid, vpn); hit {
		s.metrics[pid].TLBHits++
		return s.emit(models.Event{Kind: models.EventTLBHit, PID: pid, VPN: vpn, Frame: frame}), nil
	}

	if frame, hit := s.pageLookup(pid, vpn); hit {
		s.tlb.Insert(vpn, frame)
		return s.emit(models.Event{Kind: models.EventPageHit, PID: pid, VPN: vpn, Frame: frame}), nil
	}

	s.metrics[pid].PageFaults++
	fault, err := s.resolveFault(pid, vpn)
	if err != nil {
		return nil, err
	}
	events := s.emit(fault)

	// Después del fallo la traducción ya está en la TLB
	frame, hit := s.tlbLookup(pid, vpn)
	if !hit {
		return events, fmt.Errorf("%w: traducción %d ausente de la TLB luego del fallo", models.ErrInvalidReference, vpn)
	}
	s.metrics[pid].TLBHits++
	events = append(events, s.emit(models.Event{Kind: models.EventTLBHit, PID: pid, VPN: vpn, Frame: frame})...)
	return events, nil
}

func (s *Simulator) tlbLookup(pid int, vpn int) (int, bool) {
	s.metrics[pid].TLBLookups++
	frame, hit := s.tlb.Lookup(vpn)
	if hit && s.settings.PagePolicy == models.PageClock {
		s.frames.Reference(pid, vpn)
	}
	return frame, hit
}

func (s *Simulator) pageLookup(pid int, vpn int) (int, bool) {
	frame, hit := s.pageTable.Lookup(pid, vpn)
	if hit && s.settings.PagePolicy == models.PageClock {
		s.frames.Reference(pid, vpn)
	}
	return frame, hit
}

// resolveFault trae la página a un frame. Si hubo víctima, se la baja a un bloque
// nuevo de disco antes de liberar el bloque del que viene la página entrante.
func (s *Simulator) resolveFault(pid int, vpn int) (models.Event, error) {
	entry, _ := s.pageTable.Entry(pid, vpn)
	loadedFrom := entry.Slot

	frame, victim, err := s.frames.Allocate(pid, vpn)
	if err != nil {
		return models.Event{}, err
	}

	event := models.Event{
		Kind:       models.EventPageFault,
		PID:        pid,
		VPN:        vpn,
		Frame:      frame,
		VictimPID:  pid,
		VictimVPN:  -1,
		EvictedTo:  -1,
		LoadedFrom: loadedFrom,
	}

	if victim != nil {
		block, err := s.disk.Allocate()
		if err != nil {
			return models.Event{}, err
		}
		if err := s.pageTable.MarkEvicted(victim.PID, victim.VPN, block); err != nil {
			return models.Event{}, err
		}
		if victim.PID == pid {
			s.tlb.Remove(victim.VPN)
		}
		event.VictimPID = victim.PID
		event.VictimVPN = victim.VPN
		event.EvictedTo = block
		slog.Debug("Página bajada a disco", "pid", string(models.ProcessLetter(victim.PID)), "pagina", victim.VPN, "bloque", block)
	}

	if loadedFrom != models.NoSlot {
		if err := s.disk.Free(loadedFrom); err != nil {
			return models.Event{}, err
		}
		slog.Debug("Página subida desde disco", "pid", string(models.ProcessLetter(pid)), "pagina", vpn, "bloque", loadedFrom)
	}

	if err := s.pageTable.MapResident(pid, vpn, frame); err != nil {
		return models.Event{}, err
	}
	s.tlb.Insert(vpn, frame)
	return event, nil
}

func (s *Simulator) emit(event models.Event) []models.Event {
	line := event.String()
	fmt.Fprintln(s.out, line)
	slog.Debug(line)
	return []models.Event{event}
}

// Metrics devuelve una copia de los contadores por proceso.
func (s *Simulator) Metrics() []models.Metrics {
	metrics := make([]models.Metrics, len(s.metrics))
	copy(metrics, s.metrics)
	return metrics
}

func (s *Simulator) Summary() []models.ProcessSummary {
	return Summarize(s.metrics)
}

func (s *Simulator) Settings() models.Settings {
	return s.settings
}

func (s *Simulator) TLB() *TLB {
	return s.tlb
}

func (s *Simulator) PageTable() *PageTable {
	return s.pageTable
}

func (s *Simulator) Frames() *FrameAllocator {
	return s.frames
}

func (s *Simulator) Disk() *DiskManager {
	return s.disk
}

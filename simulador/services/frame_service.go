package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-simulador-tlb/simulador/models"
	"github.com/sisoputnfrba/tp-simulador-tlb/utils/list"
)

// allocationDomain es el conjunto de frames dentro del cual se elige la víctima.
// Con FIFO la lista está en orden de llegada; con CLOCK se recorre como anillo
// empezando por hand.
type allocationDomain struct {
	frames *list.ArrayList[*models.Frame]
	hand   int
}

// FrameAllocator administra el pool de frames físicos. Con asignación LOCAL hay un
// dominio por proceso y con GLOBAL uno solo compartido; en ambos casos el contador
// de frames vivos es único y el pool se llena una sola vez.
type FrameAllocator struct {
	policy     models.PagePolicy
	scope      models.FramePolicy
	capacity   int
	liveFrames int
	domains    []*allocationDomain
}

func NewFrameAllocator(settings models.Settings) *FrameAllocator {
	domainCount := 1
	if settings.FramePolicy == models.FrameLocal {
		domainCount = settings.Processes
	}

	domains := make([]*allocationDomain, domainCount)
	for i := range domains {
		domains[i] = &allocationDomain{frames: list.NewArrayList[*models.Frame](0)}
	}

	return &FrameAllocator{
		policy:   settings.PagePolicy,
		scope:    settings.FramePolicy,
		capacity: settings.Frames,
		domains:  domains,
	}
}

func (a *FrameAllocator) domainIndex(pid int) int {
	if a.scope == models.FrameGlobal {
		return 0
	}
	return pid
}

func (a *FrameAllocator) domainFor(pid int) (*allocationDomain, error) {
	index := a.domainIndex(pid)
	if index < 0 || index >= len(a.domains) {
		return nil, fmt.Errorf("%w: proceso %d sin dominio de asignación", models.ErrInvalidReference, pid)
	}
	return a.domains[index], nil
}

// Allocate resuelve un fallo de página de (pid, vpn). Mientras queden frames sin usar
// se asigna el siguiente número; con el pool lleno se elige una víctima dentro del
// dominio del proceso y el nuevo ocupante hereda su número de frame. Devuelve el
// frame asignado y una copia del ocupante desalojado, o nil si no hubo desalojo.
func (a *FrameAllocator) Allocate(pid int, vpn int) (int, *models.Frame, error) {
	domain, err := a.domainFor(pid)
	if err != nil {
		return -1, nil, err
	}

	if a.liveFrames > a.capacity {
		return -1, nil, fmt.Errorf("%w: %d frames vivos con capacidad %d", models.ErrFrameOverflow, a.liveFrames, a.capacity)
	}

	if a.liveFrames < a.capacity {
		frame := &models.Frame{PID: pid, VPN: vpn, Number: a.liveFrames, Referenced: true}
		a.enqueue(domain, frame)
		a.liveFrames++
		slog.Debug("Frame libre asignado", "pid", pid, "pagina", vpn, "frame", frame.Number)
		return frame.Number, nil, nil
	}

	if domain.frames.Size() == 0 {
		return -1, nil, fmt.Errorf("%w: proceso %c", models.ErrDomainEmpty, models.ProcessLetter(pid))
	}

	var victim models.Frame
	if a.policy == models.PageClock {
		victim = a.evictClock(domain, pid, vpn)
	} else {
		victim = a.evictFIFO(domain, pid, vpn)
	}

	slog.Debug("Frame reemplazado",
		"politica", a.policy.String(),
		"frame", victim.Number,
		"victima_pid", victim.PID,
		"victima_pagina", victim.VPN,
		"pid", pid,
		"pagina", vpn)
	return victim.Number, &victim, nil
}

// enqueue agrega un frame nuevo al dominio. En CLOCK queda justo detrás de la aguja,
// es decir, último en el orden de barrido.
func (a *FrameAllocator) enqueue(domain *allocationDomain, frame *models.Frame) {
	if a.policy == models.PageClock && domain.frames.Size() > 0 {
		_ = domain.frames.Insert(domain.hand, frame)
		domain.hand++
		return
	}
	domain.frames.Add(frame)
}

// evictFIFO desaloja al residente más antiguo del dominio.
func (a *FrameAllocator) evictFIFO(domain *allocationDomain, pid int, vpn int) models.Frame {
	oldest, _ := domain.frames.Dequeue()
	victim := *oldest

	domain.frames.Add(&models.Frame{PID: pid, VPN: vpn, Number: victim.Number, Referenced: true})
	return victim
}

// evictClock aplica segunda oportunidad: desde la aguja, los frames referenciados
// pierden el bit y se saltean; el primero sin referencia se pisa en el lugar.
func (a *FrameAllocator) evictClock(domain *allocationDomain, pid int, vpn int) models.Frame {
	size := domain.frames.Size()
	if domain.hand >= size {
		domain.hand = 0
	}

	for {
		frame, _ := domain.frames.Get(domain.hand)
		if !frame.Referenced {
			victim := *frame
			frame.PID = pid
			frame.VPN = vpn
			frame.Referenced = true
			domain.hand = (domain.hand + 1) % size
			return victim
		}
		frame.Referenced = false
		domain.hand = (domain.hand + 1) % size
	}
}

// Reference marca como referenciado el frame que ocupa (pid, vpn). Solo tiene
// efecto visible con CLOCK.
func (a *FrameAllocator) Reference(pid int, vpn int) bool {
	domain, err := a.domainFor(pid)
	if err != nil {
		return false
	}
	frame, _, found := domain.frames.Find(func(f *models.Frame) bool {
		return f.PID == pid && f.VPN == vpn
	})
	if !found {
		return false
	}
	frame.Referenced = true
	return true
}

func (a *FrameAllocator) LiveFrames() int {
	return a.liveFrames
}

func (a *FrameAllocator) Capacity() int {
	return a.capacity
}

func (a *FrameAllocator) DomainCount() int {
	return len(a.domains)
}

// Domain devuelve una copia de los frames del dominio en su orden interno.
func (a *FrameAllocator) Domain(index int) []models.Frame {
	if index < 0 || index >= len(a.domains) {
		return nil
	}
	frames := make([]models.Frame, 0, a.domains[index].frames.Size())
	a.domains[index].frames.ForEach(func(f *models.Frame) {
		frames = append(frames, *f)
	})
	return frames
}

// Hand devuelve la posición de la aguja del dominio (solo significativa con CLOCK).
func (a *FrameAllocator) Hand(index int) int {
	if index < 0 || index >= len(a.domains) {
		return -1
	}
	return a.domains[index].hand
}

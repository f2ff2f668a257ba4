package services

import (
	"log/slog"
	"math/rand"

	"github.com/sisoputnfrba/tp-simulador-tlb/simulador/models"
	"github.com/sisoputnfrba/tp-simulador-tlb/utils/list"
)

// TLB es una cola acotada de traducciones sin etiqueta de proceso. El orden de la
// cola es el de uso: la entrada más reciente está al final.
type TLB struct {
	entries  *list.ArrayList[models.TLBEntry]
	capacity int
	policy   models.TLBPolicy
	rng      *rand.Rand
}

func NewTLB(capacity int, policy models.TLBPolicy, rng *rand.Rand) *TLB {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &TLB{
		entries:  list.NewArrayList[models.TLBEntry](capacity),
		capacity: capacity,
		policy:   policy,
		rng:      rng,
	}
}

// Lookup busca la página y, si está, la mueve al final de la cola.
func (t *TLB) Lookup(vpn int) (int, bool) {
	entry, found := t.entries.RemoveWhere(matchVPN(vpn))
	if !found {
		return -1, false
	}
	t.entries.Add(entry)
	return entry.PFN, true
}

// Insert agrega la traducción al final. Si la página ya estaba se reemplaza; si la
// TLB está llena primero se desaloja una entrada según la política.
func (t *TLB) Insert(vpn int, pfn int) {
	if _, replaced := t.entries.RemoveWhere(matchVPN(vpn)); !replaced && t.entries.Size() >= t.capacity {
		t.evict()
	}
	t.entries.Add(models.TLBEntry{VPN: vpn, PFN: pfn})
}

func (t *TLB) evict() {
	index := 0
	if t.policy == models.TLBRandom {
		index = t.rng.Intn(t.capacity)
	}
	victim, err := t.entries.Remove(index)
	if err != nil {
		return
	}
	slog.Debug("TLB reemplazo", "politica", t.policy.String(), "posicion", index, "pagina", victim.VPN, "frame", victim.PFN)
}

// Remove descarta la traducción de una página desalojada de memoria.
func (t *TLB) Remove(vpn int) bool {
	_, removed := t.entries.RemoveWhere(matchVPN(vpn))
	return removed
}

// Flush vacía la TLB. Se usa en cada cambio de proceso.
func (t *TLB) Flush() {
	t.entries.Clear()
}

func (t *TLB) Size() int {
	return t.entries.Size()
}

func (t *TLB) Capacity() int {
	return t.capacity
}

// Entries devuelve una copia de la cola, de la menos a la más recientemente usada.
func (t *TLB) Entries() []models.TLBEntry {
	return t.entries.GetAll()
}

func matchVPN(vpn int) func(models.TLBEntry) bool {
	return func(entry models.TLBEntry) bool {
		return entry.VPN == vpn
	}
}

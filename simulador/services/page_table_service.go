package services

import (
	"fmt"

	"github.com/sisoputnfrba/tp-simulador-tlb/simulador/models"
)

// PageTable guarda una tabla de un solo nivel por proceso.
type PageTable struct {
	tables [][]models.PageTableEntry
}

func NewPageTable(processes int, pages int) *PageTable {
	tables := make([][]models.PageTableEntry, processes)
	for pid := range tables {
		tables[pid] = make([]models.PageTableEntry, pages)
		for vpn := range tables[pid] {
			tables[pid][vpn] = models.PageTableEntry{Slot: models.NoSlot, Present: false}
		}
	}
	return &PageTable{tables: tables}
}

func (pt *PageTable) entry(pid int, vpn int) (*models.PageTableEntry, error) {
	if pid < 0 || pid >= len(pt.tables) {
		return nil, fmt.Errorf("%w: proceso %d fuera de rango", models.ErrInvalidReference, pid)
	}
	if vpn < 0 || vpn >= len(pt.tables[pid]) {
		return nil, fmt.Errorf("%w: página %d fuera de rango para el proceso %c", models.ErrInvalidReference, vpn, models.ProcessLetter(pid))
	}
	return &pt.tables[pid][vpn], nil
}

// Entry devuelve una copia de la entrada.
func (pt *PageTable) Entry(pid int, vpn int) (models.PageTableEntry, error) {
	entry, err := pt.entry(pid, vpn)
	if err != nil {
		return models.PageTableEntry{}, err
	}
	return *entry, nil
}

// Lookup devuelve el frame si la página está presente.
func (pt *PageTable) Lookup(pid int, vpn int) (int, bool) {
	entry, err := pt.entry(pid, vpn)
	if err != nil || !entry.Present {
		return -1, false
	}
	return entry.Slot, true
}

func (pt *PageTable) MapResident(pid int, vpn int, frame int) error {
	entry, err := pt.entry(pid, vpn)
	if err != nil {
		return err
	}
	entry.Slot = frame
	entry.Present = true
	return nil
}

func (pt *PageTable) MarkEvicted(pid int, vpn int, block int) error {
	entry, err := pt.entry(pid, vpn)
	if err != nil {
		return err
	}
	entry.Slot = block
	entry.Present = false
	return nil
}

func (pt *PageTable) Processes() int {
	return len(pt.tables)
}

// Table devuelve una copia de la tabla del proceso.
func (pt *PageTable) Table(pid int) []models.PageTableEntry {
	if pid < 0 || pid >= len(pt.tables) {
		return nil
	}
	table := make([]models.PageTableEntry, len(pt.tables[pid]))
	copy(table, pt.tables[pid])
	return table
}

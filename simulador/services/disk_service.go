package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-simulador-tlb/simulador/models"
)

// DiskManager lleva el mapa de bloques libres/ocupados del área de swap.
// No hay E/S real: solo se registra qué bloque guarda cada página desalojada.
type DiskManager struct {
	used      []bool
	usedCount int
}

func NewDiskManager(blocks int) *DiskManager {
	if blocks < 0 {
		blocks = 0
	}
	return &DiskManager{used: make([]bool, blocks)}
}

// Allocate marca como ocupado el primer bloque libre y devuelve su índice.
func (d *DiskManager) Allocate() (int, error) {
	for i, used := range d.used {
		if !used {
			d.used[i] = true
			d.usedCount++
			slog.Debug("Bloque de disco asignado", "bloque", i)
			return i, nil
		}
	}
	slog.Error("No hay bloques de disco libres", "capacidad", len(d.used))
	return -1, models.ErrDiskFull
}

// Free libera un bloque previamente asignado. Liberar dos veces es un error del llamador.
func (d *DiskManager) Free(index int) error {
	if index < 0 || index >= len(d.used) || !d.used[index] {
		return fmt.Errorf("%w: %d", models.ErrBlockNotAllocated, index)
	}
	d.used[index] = false
	d.usedCount--
	slog.Debug("Bloque de disco liberado", "bloque", index)
	return nil
}

func (d *DiskManager) IsUsed(index int) bool {
	return index >= 0 && index < len(d.used) && d.used[index]
}

func (d *DiskManager) Used() int {
	return d.usedCount
}

func (d *DiskManager) Capacity() int {
	return len(d.used)
}

// UsedBlocks devuelve los índices ocupados en orden ascendente.
func (d *DiskManager) UsedBlocks() []int {
	blocks := make([]int, 0, d.usedCount)
	for i, used := range d.used {
		if used {
			blocks = append(blocks, i)
		}
	}
	return blocks
}

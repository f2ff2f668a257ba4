package services

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sisoputnfrba/tp-simulador-tlb/simulador/models"
)

// WriteDump vuelca el estado final de la simulación: tablas de páginas, dominios de
// frames, TLB y bloques de disco ocupados.
func WriteDump(w io.Writer, simulator *Simulator) error {
	out := bufio.NewWriter(w)
	settings := simulator.Settings()

	fmt.Fprintf(out, "## Configuración\nTLB: %s (%d entradas) - Reemplazo: %s - Asignación: %s - Procesos: %d - Páginas: %d - Frames: %d\n",
		settings.TLBPolicy, settings.TLBEntries, settings.PagePolicy, settings.FramePolicy,
		settings.Processes, settings.Pages, settings.Frames)

	pageTable := simulator.PageTable()
	for pid := 0; pid < pageTable.Processes(); pid++ {
		fmt.Fprintf(out, "## Tabla de páginas - Proceso %c\n", models.ProcessLetter(pid))
		for vpn, entry := range pageTable.Table(pid) {
			switch {
			case entry.Present:
				fmt.Fprintf(out, "%d => frame %d\n", vpn, entry.Slot)
			case entry.Slot != models.NoSlot:
				fmt.Fprintf(out, "%d => disco %d\n", vpn, entry.Slot)
			}
		}
	}

	frames := simulator.Frames()
	for index := 0; index < frames.DomainCount(); index++ {
		if settings.PagePolicy == models.PageClock {
			fmt.Fprintf(out, "## Frames - Dominio %d (aguja %d)\n", index, frames.Hand(index))
		} else {
			fmt.Fprintf(out, "## Frames - Dominio %d\n", index)
		}
		for _, frame := range frames.Domain(index) {
			fmt.Fprintf(out, "frame %d: Proceso %c página %d referenciado=%t\n",
				frame.Number, models.ProcessLetter(frame.PID), frame.VPN, frame.Referenced)
		}
	}

	fmt.Fprintln(out, "## TLB")
	for _, entry := range simulator.TLB().Entries() {
		fmt.Fprintf(out, "%d => %d\n", entry.VPN, entry.PFN)
	}

	fmt.Fprintf(out, "## Disco\nbloques ocupados: %v\n", simulator.Disk().UsedBlocks())
	return out.Flush()
}

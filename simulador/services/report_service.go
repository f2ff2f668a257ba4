package services

import (
	"fmt"
	"io"

	"github.com/sisoputnfrba/tp-simulador-tlb/simulador/models"
)

// Summarize calcula, por proceso, tasa de aciertos de TLB, tasa de fallos de página y
// Effective Access Time. Un proceso sin referencias queda en cero con HasData en false.
func Summarize(metrics []models.Metrics) []models.ProcessSummary {
	summaries := make([]models.ProcessSummary, len(metrics))
	for pid, m := range metrics {
		summary := models.ProcessSummary{PID: pid, Metrics: m}

		if m.References > 0 {
			summary.FaultRate = float64(m.PageFaults) / float64(m.References)
		}
		if m.TLBLookups > 0 {
			summary.HasData = true
			summary.HitRatio = float64(m.TLBHits) / float64(m.TLBLookups)
			summary.EffectiveAccessTime = effectiveAccessTime(summary.HitRatio)
		}
		summaries[pid] = summary
	}
	return summaries
}

// Un acierto cuesta una búsqueda en TLB y un acceso a memoria; un fallo de TLB suma
// el acceso a la tabla de páginas.
func effectiveAccessTime(hitRatio float64) float64 {
	hit := models.MemoryCycleTime + models.TLBLookupTime
	miss := 2*models.MemoryCycleTime + models.TLBLookupTime
	return hitRatio*hit + (1-hitRatio)*miss
}

// WriteAnalysis escribe el resumen con el formato del archivo analysis.txt.
func WriteAnalysis(w io.Writer, summaries []models.ProcessSummary) error {
	for _, summary := range summaries {
		letter := models.ProcessLetter(summary.PID)
		_, err := fmt.Fprintf(w, "Process %c, Effective Access Time = %.3f\nProcess %c, Page Fault Rate: %.3f\n",
			letter, summary.EffectiveAccessTime, letter, summary.FaultRate)
		if err != nil {
			return err
		}
	}
	return nil
}

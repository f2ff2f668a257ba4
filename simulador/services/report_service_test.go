package services

import (
	"bytes"
	"math"
	"testing"

	"github.com/sisoputnfrba/tp-simulador-tlb/simulador/models"
)

func TestSummarize(t *testing.T) {
	summaries := Summarize([]models.Metrics{
		{References: 4, TLBLookups: 8, TLBHits: 6, PageFaults: 2},
		{},
	})

	first := summaries[0]
	if !first.HasData || first.FaultRate != 0.5 || first.HitRatio != 0.75 {
		t.Errorf("Unexpected summary: %+v", first)
	}
	// 0.75 * 120 + 0.25 * 220
	if math.Abs(first.EffectiveAccessTime-145) > 1e-9 {
		t.Errorf("Expected EAT 145, got %f", first.EffectiveAccessTime)
	}

	// Sin referencias no hay división por cero
	second := summaries[1]
	if second.HasData || second.FaultRate != 0 || second.HitRatio != 0 || second.EffectiveAccessTime != 0 {
		t.Errorf("Expected zeroed summary, got %+v", second)
	}
	if math.IsNaN(second.EffectiveAccessTime) || math.IsNaN(second.FaultRate) {
		t.Errorf("Expected no NaN values")
	}
}

func TestWriteAnalysis(t *testing.T) {
	var buffer bytes.Buffer
	summaries := Summarize([]models.Metrics{{References: 4, TLBLookups: 8, TLBHits: 6, PageFaults: 2}})

	if err := WriteAnalysis(&buffer, summaries); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := "Process A, Effective Access Time = 145.000\nProcess A, Page Fault Rate: 0.500\n"
	if buffer.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buffer.String())
	}
}

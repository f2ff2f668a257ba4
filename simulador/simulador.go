package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sisoputnfrba/tp-simulador-tlb/simulador/helpers"
	"github.com/sisoputnfrba/tp-simulador-tlb/simulador/models"
	"github.com/sisoputnfrba/tp-simulador-tlb/simulador/services"
)

const (
	//Se puede pasar otro archivo como primer argumento, .json o sys_config.txt
	ConfigPath = "simulador/configs/simulador.json"
	LogPath    = "./logs/simulador.log"
)

// Uso: ./bin/simulador [archivo_config] [archivo_traza]
func main() {
	configPath := ConfigPath
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, settings, logFile, err := helpers.InitSimulator(configPath, LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error al iniciar el simulador: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	tracePath := cfg.TracePath
	if len(os.Args) > 2 {
		tracePath = os.Args[2]
	}

	references, err := services.LoadTrace(tracePath)
	if err != nil {
		fail("Error al cargar la traza", err)
	}
	if err := services.ValidateReferences(references, settings); err != nil {
		fail("Traza inválida para la configuración", err)
	}

	output, err := helpers.CreateFile(cfg.OutputPath)
	if err != nil {
		fail("Error al crear el archivo de salida", err)
	}
	defer output.Close()

	simulator := services.NewSimulator(settings, output)
	slog.Info("Simulación iniciada", "referencias", len(references), "traza", tracePath)

	if err := simulator.Run(references); err != nil {
		fail("La simulación se detuvo", err)
	}

	analysis, err := helpers.CreateFile(cfg.AnalysisPath)
	if err != nil {
		fail("Error al crear el archivo de análisis", err)
	}
	defer analysis.Close()

	summaries := simulator.Summary()
	if err := services.WriteAnalysis(analysis, summaries); err != nil {
		fail("Error al escribir el análisis", err)
	}
	for _, summary := range summaries {
		if !summary.HasData {
			slog.Warn(fmt.Sprintf("Proceso %c sin referencias, métricas en cero", models.ProcessLetter(summary.PID)))
		}
	}

	if cfg.DumpPath != "" {
		dumpPath, err := helpers.DumpSimulation(simulator, cfg.DumpPath)
		if err != nil {
			fail("Error al generar el dump", err)
		}
		slog.Info("Dump generado", "path", dumpPath)
	}

	slog.Info("Simulación finalizada", "salida", cfg.OutputPath, "analisis", cfg.AnalysisPath)
}

func fail(message string, err error) {
	slog.Error(message, "error", err)
	os.Exit(1)
}

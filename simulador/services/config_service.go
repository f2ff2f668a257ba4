package services

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sisoputnfrba/tp-simulador-tlb/simulador/models"
	"github.com/sisoputnfrba/tp-simulador-tlb/utils/config"
)

const (
	DefaultTracePath    = "trace.txt"
	DefaultOutputPath   = "trace_output.txt"
	DefaultAnalysisPath = "analysis.txt"
	DefaultLogLevel     = "INFO"
)

// Orden fijo de las líneas de sys_config.txt
const (
	sysTLBPolicy = iota
	sysPagePolicy
	sysFramePolicy
	sysProcesses
	sysPages
	sysFrames
	sysConfigLines
)

// LoadConfig carga la configuración desde un .json o desde el formato de texto
// "etiqueta: valor" de sys_config.txt, y completa los valores por defecto.
func LoadConfig(path string) (*models.Config, error) {
	cfg := &models.Config{}

	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = config.InitConfig(path, cfg)
	} else {
		err = loadSysConfig(path, cfg)
	}
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *models.Config) {
	if cfg.TracePath == "" {
		cfg.TracePath = DefaultTracePath
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	if cfg.AnalysisPath == "" {
		cfg.AnalysisPath = DefaultAnalysisPath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

// loadSysConfig lee las seis líneas del formato original. La etiqueta no se usa,
// solo importa la posición de la línea.
func loadSysConfig(path string, cfg *models.Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("no se pudo abrir la configuración %s: %w", path, err)
	}
	defer file.Close()

	values := make([]string, 0, sysConfigLines)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() && len(values) < sysConfigLines {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		_, value, found := strings.Cut(line, ":")
		if !found {
			return fmt.Errorf("%w: línea %q sin separador ':'", models.ErrInvalidConfig, line)
		}
		values = append(values, strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error leyendo la configuración %s: %w", path, err)
	}
	if len(values) < sysConfigLines {
		return fmt.Errorf("%w: se esperaban %d líneas en %s, se leyeron %d", models.ErrInvalidConfig, sysConfigLines, path, len(values))
	}

	cfg.TlbReplacement = values[sysTLBPolicy]
	cfg.PageReplacement = values[sysPagePolicy]
	cfg.FrameAllocation = values[sysFramePolicy]

	counts := []struct {
		target *int
		index  int
	}{
		{&cfg.ProcessCount, sysProcesses},
		{&cfg.PagesPerProcess, sysPages},
		{&cfg.FrameCount, sysFrames},
	}
	for _, count := range counts {
		n, err := strconv.Atoi(values[count.index])
		if err != nil {
			return fmt.Errorf("%w: %q no es un número", models.ErrInvalidConfig, values[count.index])
		}
		*count.target = n
	}
	return nil
}

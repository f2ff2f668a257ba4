package helpers

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/sisoputnfrba/tp-simulador-tlb/simulador/models"
	"github.com/sisoputnfrba/tp-simulador-tlb/simulador/services"
	"github.com/sisoputnfrba/tp-simulador-tlb/utils/log"
)

// CreateDirectory crea un directorio en el path especificado.
func CreateDirectory(dir string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		slog.Error(fmt.Sprintf("Error al crear el directorio %s: %v", dir, err))
		return err
	}

	slog.Debug(fmt.Sprintf("Directorio %s creado o ya existía.", dir))
	return nil
}

// CreateFile crea (o trunca) el archivo, creando antes su directorio.
func CreateFile(file string) (*os.File, error) {
	if dir := filepath.Dir(file); dir != "." {
		if err := CreateDirectory(dir); err != nil {
			return nil, err
		}
	}

	f, err := os.Create(file)
	if err != nil {
		slog.Error(fmt.Sprintf("Error al crear el archivo: %v", err))
		return nil, err
	}
	return f, nil
}

// InitSimulator carga la configuración, inicia el logger y valida los parámetros.
// Devuelve el archivo de log abierto para que main lo cierre.
func InitSimulator(configPath string, logPath string) (*models.Config, models.Settings, io.Closer, error) {
	cfg, err := services.LoadConfig(configPath)
	if err != nil {
		return nil, models.Settings{}, nil, err
	}

	logFile, err := log.InitLogger(logPath, cfg.LogLevel)
	if err != nil {
		return nil, models.Settings{}, nil, err
	}

	settings, err := cfg.Settings()
	if err != nil {
		logFile.Close()
		return nil, models.Settings{}, nil, err
	}

	slog.Debug("Configuración cargada",
		"tlb", settings.TLBPolicy.String(),
		"reemplazo", settings.PagePolicy.String(),
		"asignacion", settings.FramePolicy.String(),
		"procesos", settings.Processes,
		"paginas", settings.Pages,
		"frames", settings.Frames)
	return cfg, settings, logFile, nil
}

func GetDumpName() string {
	timestamp := time.Now().Format("20060102-150405")
	return fmt.Sprintf("simulacion-%s.dmp", timestamp)
}

// DumpSimulation escribe el estado final en un archivo nuevo dentro de dir.
func DumpSimulation(simulator *services.Simulator, dir string) (string, error) {
	dumpPath := filepath.Join(dir, GetDumpName())

	file, err := CreateFile(dumpPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := services.WriteDump(file, simulator); err != nil {
		return "", fmt.Errorf("error al escribir el dump %s: %w", dumpPath, err)
	}
	return dumpPath, nil
}

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// InitLogger permite loguear tanto en consola como en archivo según el nivel que se le pase.
// Crea el directorio del archivo si no existe y devuelve el archivo abierto para que el
// llamador lo cierre al terminar la simulación.
//
// Parámetros:
//   - logPath: la ubicación donde se va a encontrar el archivo
//   - logLevel: nivel de logueo, este dato viene definido en el archivo de config.
//
// Ejemplo:
//
//	func main() {
//		logFile, err := log.InitLogger("./logs/simulador.log", "INFO")
//		if err != nil {
//			panic(err)
//		}
//		defer logFile.Close()
//	}
func InitLogger(logPath string, logLevel string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), os.ModePerm); err != nil {
		return nil, fmt.Errorf("no se pudo crear el directorio de logs: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el archivo de log %s: %w", logPath, err)
	}

	// Consola y archivo a la vez
	multiWriter := io.MultiWriter(os.Stdout, logFile)

	level, levelErr := convertStringToLogLevel(logLevel)

	handler := slog.NewTextHandler(multiWriter, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	// El nivel inválido no es fatal, se avisa y se sigue con INFO
	if levelErr != nil {
		slog.Warn(levelErr.Error())
	}

	slog.Debug("Se ha configurado correctamente el logger", "path", logPath, "level", level.String())
	return logFile, nil
}

// convertStringToLogLevel traduce el nivel de log del config al tipo slog.Level.
func convertStringToLogLevel(levelStr string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("no existe el nivel de log %q, se coloca INFO por defecto", levelStr)
	}
}

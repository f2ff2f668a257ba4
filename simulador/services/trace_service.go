package services

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sisoputnfrba/tp-simulador-tlb/simulador/models"
)

// ParseReference interpreta una línea de traza con la forma "Reference(A, 12)".
// Se tolera cualquier texto antes del paréntesis y espacios alrededor de los campos.
func ParseReference(line string) (models.Reference, error) {
	open := strings.Index(line, "(")
	closing := strings.LastIndex(line, ")")
	if open == -1 || closing < open {
		return models.Reference{}, fmt.Errorf("%w: línea sin formato (proceso, página): %q", models.ErrInvalidReference, line)
	}

	fields := strings.Split(line[open+1:closing], ",")
	if len(fields) != 2 {
		return models.Reference{}, fmt.Errorf("%w: se esperaban dos campos en %q", models.ErrInvalidReference, line)
	}

	process := strings.TrimSpace(fields[0])
	if utf8.RuneCountInString(process) != 1 {
		return models.Reference{}, fmt.Errorf("%w: proceso %q inválido", models.ErrInvalidReference, process)
	}
	letter, _ := utf8.DecodeRuneInString(process)
	pid, err := models.ProcessID(letter)
	if err != nil {
		return models.Reference{}, err
	}

	vpn, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || vpn < 0 {
		return models.Reference{}, fmt.Errorf("%w: página %q inválida", models.ErrInvalidReference, strings.TrimSpace(fields[1]))
	}

	return models.Reference{PID: pid, VPN: vpn}, nil
}

// LoadTrace lee la traza completa. Las líneas vacías se ignoran.
func LoadTrace(path string) ([]models.Reference, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir la traza %s: %w", path, err)
	}
	defer file.Close()

	references := []models.Reference{}
	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ref, err := ParseReference(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNumber, err)
		}
		references = append(references, ref)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error leyendo la traza %s: %w", path, err)
	}

	slog.Debug("Traza cargada", "path", path, "referencias", len(references))
	return references, nil
}

// ValidateReferences verifica que cada referencia entre en la configuración.
func ValidateReferences(references []models.Reference, settings models.Settings) error {
	for i, ref := range references {
		if ref.PID >= settings.Processes {
			return fmt.Errorf("%w: referencia %d usa el proceso %c y solo hay %d", models.ErrInvalidReference, i+1, models.ProcessLetter(ref.PID), settings.Processes)
		}
		if ref.VPN >= settings.Pages {
			return fmt.Errorf("%w: referencia %d usa la página %d y solo hay %d", models.ErrInvalidReference, i+1, ref.VPN, settings.Pages)
		}
	}
	return nil
}

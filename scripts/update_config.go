package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sisoputnfrba/tp-simulador-tlb/simulador/models"
)

// Para su uso se debe posicionar en la carpeta scripts
// > go run update_config.go tlb_replacement RANDOM
// > go run update_config.go page_replacement FIFO frame_allocation LOCAL frame_count 8

const ConfigDir = "../simulador/configs"

func main() {
	// Los argumentos vienen en pares: clave1 valor1 clave2 valor2 ...
	if len(os.Args) < 3 || len(os.Args)%2 != 1 {
		fmt.Println("Uso: update_config <clave_1> <valor_1> [<clave_2> <valor_2> ...]")
		fmt.Println("Ejemplo: update_config tlb_replacement RANDOM frame_count 32")
		return
	}

	updates := parseUpdates(os.Args[1:])

	fmt.Println("Valores a actualizar:")
	for k, v := range updates {
		fmt.Printf("  %s: %v\n", k, v)
	}

	err := filepath.Walk(ConfigDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fmt.Printf("  Error al acceder %s: %v\n", path, err)
			return nil
		}
		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		modified, err := updateConfigFile(path, updates)
		switch {
		case err != nil:
			fmt.Printf("  No se actualizó %s: %v\n", path, err)
		case modified:
			fmt.Printf("  El archivo %s ha sido actualizado correctamente.\n", path)
		default:
			fmt.Printf("  No se encontraron claves a actualizar en %s.\n", path)
		}
		return nil
	})
	if err != nil {
		fmt.Printf("Error al buscar archivos en la carpeta %s: %v\n", ConfigDir, err)
	}

	fmt.Println("\nProceso de actualización de configuraciones finalizado.")
}

// parseUpdates arma el mapa clave => valor. Los valores que son JSON válido (números,
// booleanos) conservan su tipo; el resto se toma como string.
func parseUpdates(args []string) map[string]interface{} {
	updates := make(map[string]interface{})
	for i := 0; i+1 < len(args); i += 2 {
		var parsedValue interface{}
		if err := json.Unmarshal([]byte(args[i+1]), &parsedValue); err != nil {
			parsedValue = args[i+1]
		}
		updates[args[i]] = parsedValue
	}
	return updates
}

// updateConfigFile modifica solo las claves existentes y no escribe el archivo si el
// resultado no es una configuración válida para el simulador.
func updateConfigFile(path string, updates map[string]interface{}) (bool, error) {
	fileContent, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	var data map[string]interface{}
	if err := json.Unmarshal(fileContent, &data); err != nil {
		return false, fmt.Errorf("JSON inválido: %w", err)
	}

	modified := false
	for updateKey, updateValue := range updates {
		if _, ok := data[updateKey]; ok {
			data[updateKey] = updateValue
			modified = true
		}
	}
	if !modified {
		return false, nil
	}

	newJSON, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return false, err
	}

	var cfg models.Config
	decoder := json.NewDecoder(bytes.NewReader(newJSON))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return false, fmt.Errorf("la configuración resultante no se puede leer: %w", err)
	}
	if _, err := cfg.Settings(); err != nil {
		return false, err
	}

	return true, os.WriteFile(path, append(newJSON, '\n'), 0644)
}

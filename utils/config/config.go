package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// InitConfig lee el archivo de configuración JSON y decodifica sus valores en config.
// A diferencia de una carga silenciosa, cualquier error se devuelve al llamador para
// que aborte el arranque con un mensaje descriptivo.
//
// Parámetros:
//   - filePath: ubicación donde se encuentra el archivo de configuración
//   - config: puntero a cualquier tipo de estructura
//
// Ejemplo:
//
//	type TestConfig struct {
//		Name  string `json:"name"`
//		Value int    `json:"value"`
//	}
//	func main() {
//		var testConfig TestConfig
//		if err := config.InitConfig("./test.json", &testConfig); err != nil {
//			panic(err)
//		}
//	}
func InitConfig(filePath string, config interface{}) error {
	if err := setupConfig(filePath, config); err != nil {
		return fmt.Errorf("error al configurar el archivo %s: %w", filePath, err)
	}
	return nil
}

func setupConfig(filePath string, config interface{}) error {
	configFile, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer configFile.Close()

	jsonParser := json.NewDecoder(configFile)
	// Una clave mal escrita en el config es un error, no un valor por defecto silencioso
	jsonParser.DisallowUnknownFields()

	return jsonParser.Decode(config)
}

package util

import (
	"encoding/json"
	"errors"
	"os"
)

func WriteJSONToFile[T any](value T, file string) {
	data, _ := json.MarshalIndent(value, "", "  ")

	outfile, _ := os.Create(file)
	defer outfile.Close()
	outfile.Write(data)
}

func ReadJSONFromFile[T any](file string) T {
	_, err := os.Stat(file)
	if errors.Is(err, os.ErrNotExist) {
		panic("file not found: " + file)
	}

	data, _ := os.ReadFile(file)

	var value T
	json.Unmarshal(data, &value)

	return value
}

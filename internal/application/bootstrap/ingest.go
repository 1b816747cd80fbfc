package bootstrap

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ReadHospitalFile lee un archivo de texto con un nombre de hospital por
// línea. Los listados de la red llegan a veces exportados desde Excel en
// ISO-8859-1; si el contenido no es UTF-8 válido se decodifica con ese
// charset. Líneas vacías y comentarios con '#' se ignoran.
func ReadHospitalFile(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer archivo de hospitales: %w", err)
	}

	if !utf8.Valid(raw) {
		decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
		if err != nil {
			return nil, fmt.Errorf("decodificar ISO-8859-1: %w", err)
		}
		raw = decoded
	}

	var nombres []string
	sc := bufio.NewScanner(strings.NewReader(string(raw)))
	for sc.Scan() {
		linea := strings.TrimSpace(sc.Text())
		if linea == "" || strings.HasPrefix(linea, "#") {
			continue
		}
		nombres = append(nombres, linea)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("recorrer archivo de hospitales: %w", err)
	}
	return nombres, nil
}

// Package tenancy reúne las reglas puras del núcleo multi-tenant: nombres de esquema,
// dominios, números de registro y la máquina de estados de activación.
package tenancy

import (
	"fmt"
	"net"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Campus-api/internal/domain"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
)

var (
	schemaNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)
	domainLabel       = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)
	upper             = cases.Upper(language.Und)
)

// NormalizeSchemaName recorta y pasa a minúsculas; rechaza public y los esquemas de sistema.
func NormalizeSchemaName(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == entity.PublicSchema || s == "information_schema" || strings.HasPrefix(s, "pg_") {
		return "", domain.ErrSchemaNameReserved
	}
	if !schemaNamePattern.MatchString(s) {
		return "", domain.ErrInvalidSchemaName
	}
	return s, nil
}

// NormalizeDomain recorta, pasa a minúsculas y agrega el sufijo canónico si falta
// ("kibo" + "localhost" → "kibo.localhost"). suffix vacío = sin subdominios sintéticos.
func NormalizeDomain(raw, suffix string) (string, error) {
	d := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(raw)), ".")
	if d == "" {
		return "", domain.ErrInvalidDomain
	}
	suffix = strings.Trim(strings.ToLower(suffix), ".")
	if suffix != "" && d != suffix && !strings.HasSuffix(d, "."+suffix) {
		d = d + "." + suffix
	}
	if d == suffix || len(d) > 253 {
		return "", domain.ErrInvalidDomain
	}
	for _, label := range strings.Split(d, ".") {
		if !domainLabel.MatchString(label) {
			return "", domain.ErrInvalidDomain
		}
	}
	return d, nil
}

// NormalizeHost extrae el host de un encabezado Host: sin puerto, minúsculas, sin punto final.
func NormalizeHost(hostport string) string {
	h := strings.TrimSpace(hostport)
	if host, _, err := net.SplitHostPort(h); err == nil {
		h = host
	}
	h = strings.Trim(h, "[]")
	return strings.TrimSuffix(strings.ToLower(h), ".")
}

// NormalizeRegistrationNumber deja el número de registro como se almacena (mayúsculas, sin espacios).
func NormalizeRegistrationNumber(raw string) string {
	return upper.String(strings.TrimSpace(raw))
}

// AdminPrefix deriva el prefijo del admin por defecto: primeras tres letras del nombre,
// sin diacríticos y en mayúsculas ("Kibo College" → "KIB", "Élite" → "ELI").
func AdminPrefix(institutionName string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), institutionName)
	if err != nil {
		folded = institutionName
	}
	var b strings.Builder
	for _, r := range upper.String(folded) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
			if b.Len() == 3 {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "ADM"
	}
	return b.String()
}

// AdminRegistrationNumber compone PREFIJO-NNN (KIB-001).
func AdminRegistrationNumber(prefix string, seq int) string {
	return fmt.Sprintf("%s-%03d", prefix, seq)
}

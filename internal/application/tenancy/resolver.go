// Package tenancy resuelve el host de una petición al esquema de la institución dueña.
package tenancy

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Campus-api/internal/domain"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
	"github.com/jhoicas/Campus-api/internal/domain/repository"
	rules "github.com/jhoicas/Campus-api/internal/domain/tenancy"
)

// DomainCache caché opcional dominio → esquema. Solo guarda aciertos.
type DomainCache interface {
	Get(ctx context.Context, domain string) (schema string, ok bool, err error)
	Set(ctx context.Context, domain, schema string) error
	Invalidate(ctx context.Context, domains ...string) error
}

// Resolver mapea hosts a esquemas. Es una consulta pura: se invoca en cada petición.
type Resolver struct {
	domains     repository.DomainRepository
	cache       DomainCache
	publicHosts map[string]struct{}
	log         zerolog.Logger
}

// NewResolver construye el resolver. cache puede ser nil.
func NewResolver(domains repository.DomainRepository, cache DomainCache, publicHosts []string, log zerolog.Logger) *Resolver {
	hosts := make(map[string]struct{}, len(publicHosts))
	for _, h := range publicHosts {
		hosts[rules.NormalizeHost(h)] = struct{}{}
	}
	return &Resolver{domains: domains, cache: cache, publicHosts: hosts, log: log}
}

// IsPublicHost informa si host entra al esquema public.
func (r *Resolver) IsPublicHost(host string) bool {
	_, ok := r.publicHosts[rules.NormalizeHost(host)]
	return ok
}

// Resolve devuelve el esquema dueño de host, o domain.ErrUnknownTenant.
// public solo se obtiene desde un host público configurado, nunca desde un dominio registrado.
func (r *Resolver) Resolve(ctx context.Context, host string) (string, error) {
	h := rules.NormalizeHost(host)
	if h == "" {
		return "", domain.ErrUnknownTenant
	}
	if _, ok := r.publicHosts[h]; ok {
		return entity.PublicSchema, nil
	}

	if r.cache != nil {
		schema, ok, err := r.cache.Get(ctx, h)
		if err != nil {
			r.log.Warn().Err(err).Str("host", h).Msg("caché de dominios no disponible")
		} else if ok {
			return checkTenantSchema(schema)
		}
	}

	schema, err := r.domains.SchemaByDomain(ctx, h)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", h, err)
	}
	if _, err := checkTenantSchema(schema); err != nil {
		return "", err
	}
	if r.cache != nil {
		if err := r.cache.Set(ctx, h, schema); err != nil {
			r.log.Warn().Err(err).Str("host", h).Msg("no se pudo cachear el dominio")
		}
	}
	return schema, nil
}

// Invalidate elimina dominios de la caché (al borrar una institución).
func (r *Resolver) Invalidate(ctx context.Context, domains ...string) {
	if r.cache == nil || len(domains) == 0 {
		return
	}
	if err := r.cache.Invalidate(ctx, domains...); err != nil {
		r.log.Warn().Err(err).Strs("domains", domains).Msg("no se pudo invalidar la caché de dominios")
	}
}

func checkTenantSchema(schema string) (string, error) {
	if schema == "" || schema == entity.PublicSchema {
		return "", domain.ErrUnknownTenant
	}
	return schema, nil
}

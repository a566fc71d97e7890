package goaltracking

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	pipedrivedomain "github.com/jmfarina/sales-ops-api/infrastructure/integrator/pipedrive/domain"
)

// DealCache es el cache en proceso de resultados del CRM dentro de la ventana
// de polling. Cada instancia del servicio tiene el suyo: en un despliegue
// horizontal los caches no se comparten y la staleness entre instancias es un
// trade-off aceptado.
//
// El reloj se inyecta para poder testear la expiración sin dormir.
type DealCache struct {
	mu      sync.RWMutex
	entries map[string]dealCacheEntry
	now     func() time.Time
}

type dealCacheEntry struct {
	deals     []pipedrivedomain.Deal
	expiresAt time.Time
}

func NewDealCache(now func() time.Time) *DealCache {
	if now == nil {
		now = time.Now
	}
	return &DealCache{
		entries: make(map[string]dealCacheEntry),
		now:     now,
	}
}

// Get devuelve la entrada vigente. Una entrada vencida se borra en la misma
// lectura que la descubre; no hay barrido de fondo.
func (c *DealCache) Get(key string) ([]pipedrivedomain.Deal, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}

	return entry.deals, true
}

func (c *DealCache) Put(key string, deals []pipedrivedomain.Deal, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = dealCacheEntry{
		deals:     deals,
		expiresAt: c.now().Add(ttl),
	}
	c.mu.Unlock()
}

// CacheKey arma la clave compuesta. Los identificadores se normalizan
// (trim + orden) antes de unir: pedir el mismo equipo en otro orden tiene
// que pegar en la misma entrada.
func CacheKey(mode string, identifiers []string, year, quarter int) string {
	normalized := make([]string, 0, len(identifiers))
	for _, id := range identifiers {
		id = strings.ToLower(strings.TrimSpace(id))
		if id != "" {
			normalized = append(normalized, id)
		}
	}
	sort.Strings(normalized)

	return fmt.Sprintf("%s|%s|%d|%d", mode, strings.Join(normalized, ","), year, quarter)
}

package pipedriveclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// ListWonDealsParams define la ventana de consulta de operaciones ganadas.
// El filtro por fecha del lado del servidor es aproximado: la ventana se pide
// amplia y el filtrado exacto por trimestre lo hace el consumidor.
type ListWonDealsParams struct {
	Since time.Time
	Until time.Time
}

type listDealsResponse struct {
	Success        bool             `json:"success"`
	Data           []map[string]any `json:"data"`
	AdditionalData struct {
		Pagination struct {
			Start                 int  `json:"start"`
			Limit                 int  `json:"limit"`
			MoreItemsInCollection bool `json:"more_items_in_collection"`
			NextStart             int  `json:"next_start"`
		} `json:"pagination"`
	} `json:"additional_data"`
}

// ListWonDeals pagina sobre GET /deals?status=won y devuelve los items crudos
// del CRM. El mapeo a tipos del dominio queda en el integrador, que conoce
// las claves de los campos personalizados.
func (c *PipedriveClient) ListWonDeals(params ListWonDealsParams) ([]map[string]any, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	limit := c.config.Pipedrive.PageLimit
	if limit <= 0 {
		limit = 500
	}

	var deals []map[string]any
	start := 0

	for {
		page, err := c.listWonDealsPage(ctx, start, limit)
		if err != nil {
			return nil, err
		}

		for _, raw := range page.Data {
			if inWindow(raw, params) {
				deals = append(deals, raw)
			}
		}

		if !page.AdditionalData.Pagination.MoreItemsInCollection {
			break
		}
		start = page.AdditionalData.Pagination.NextStart
	}

	return deals, nil
}

func (c *PipedriveClient) listWonDealsPage(ctx context.Context, start, limit int) (*listDealsResponse, error) {
	endpoint, err := url.Parse(c.config.Pipedrive.URL)
	if err != nil {
		return nil, errors.Wrap(err, "error al analizar la URL base de Pipedrive")
	}
	endpoint.Path = path.Join(endpoint.Path, "/deals")

	query := endpoint.Query()
	query.Set("status", "won")
	query.Set("sort", "won_time DESC")
	query.Set("start", strconv.Itoa(start))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("api_token", c.config.Pipedrive.APIToken)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "error al crear la request a Pipedrive")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(redactQuery(err), "error al ejecutar la request a Pipedrive")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("la request a Pipedrive falló con status: %s", resp.Status)
	}

	var page listDealsResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, errors.Wrap(err, "error al decodificar la respuesta de Pipedrive")
	}

	if !page.Success {
		return nil, errors.New("Pipedrive respondió success=false")
	}

	return &page, nil
}

// redactQuery recorta la query string de la URL que viaja en el error de
// transporte. La URL completa lleva el api_token y no puede llegar ni a los
// logs ni al cuerpo de una respuesta.
func redactQuery(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
		u.RawQuery = ""
		urlErr.URL = u.String()
	}

	return err
}

// inWindow descarta en el cliente lo que cae fuera de la ventana pedida.
// Las páginas vienen ordenadas por won_time pero el corte exacto es acá.
func inWindow(raw map[string]any, params ListWonDealsParams) bool {
	wonTimeStr, ok := raw["won_time"].(string)
	if !ok || wonTimeStr == "" {
		// Sin won_time no se puede ubicar en la ventana; se deja pasar y el
		// filtro de trimestre del consumidor la descarta.
		return true
	}

	wonTime, err := time.ParseInLocation("2006-01-02 15:04:05", wonTimeStr, time.Local)
	if err != nil {
		return true
	}

	if !params.Since.IsZero() && wonTime.Before(params.Since) {
		return false
	}
	if !params.Until.IsZero() && wonTime.After(params.Until) {
		return false
	}

	return true
}

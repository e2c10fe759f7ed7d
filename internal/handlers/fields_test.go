package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tillik/airlinewebservice/internal/service"
)

func TestDecodeBody_Aliases(t *testing.T) {
	body := `{"flight-number":"AB12C3","name":"Jane Roe","pass-number":"AB12345"}`

	var req service.BookTicketRequest
	require.NoError(t, decodeBody(strings.NewReader(body), &req))

	assert.Equal(t, "AB12C3", req.Flightnumber)
	assert.Equal(t, "Jane Roe", req.Passengername)
	assert.Equal(t, "AB12345", req.Passportnumber)
}

func TestDecodeBody_CanonicalWins(t *testing.T) {
	body := `{"flightnumber":"AB12C3","flight-number":"ZZ9ZZ9","name":"Jane Roe","pass-number":"AB12345"}`

	var req service.BookTicketRequest
	require.NoError(t, decodeBody(strings.NewReader(body), &req))

	assert.Equal(t, "AB12C3", req.Flightnumber)
}

func TestDecodeBody_InvalidJSON(t *testing.T) {
	var req service.BookTicketRequest
	assert.Error(t, decodeBody(strings.NewReader("not json"), &req))
	assert.Error(t, decodeBody(strings.NewReader(`[1,2,3]`), &req))
}

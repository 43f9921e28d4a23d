package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercadolivro-api/internal/domain"
	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
)

func TestBookStatus_Transiciones(t *testing.T) {
	cases := []struct {
		from, to entity.BookStatus
		allowed  bool
	}{
		{entity.BookActive, entity.BookSold, true},
		{entity.BookActive, entity.BookDeleted, true},
		{entity.BookActive, entity.BookActive, true},
		{entity.BookSold, entity.BookDeleted, true},
		{entity.BookSold, entity.BookSold, true},
		{entity.BookSold, entity.BookActive, false},
		{entity.BookDeleted, entity.BookDeleted, true},
		{entity.BookDeleted, entity.BookSold, false},
		{entity.BookDeleted, entity.BookActive, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			b := &entity.Book{ID: 1, Status: tc.from}
			err := b.ChangeStatus(tc.to)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, b.Status)
				return
			}
			require.ErrorIs(t, err, domain.ErrBookInvalidStatusTransition)
			de, _ := domain.AsError(err)
			assert.Equal(t, "Cannot update book with status ["+string(tc.from)+"]", de.Message)
			assert.Equal(t, tc.from, b.Status, "el estado no cambia si la transición es inválida")
		})
	}
}

func TestBook_Editable(t *testing.T) {
	assert.True(t, (&entity.Book{Status: entity.BookActive}).Editable())
	assert.False(t, (&entity.Book{Status: entity.BookSold}).Editable())
	assert.False(t, (&entity.Book{Status: entity.BookDeleted}).Editable())
}

func TestCustomer_Roles(t *testing.T) {
	c := &entity.Customer{Roles: []entity.Role{entity.RoleCustomer, entity.RoleAdmin}, Status: entity.CustomerActive}

	assert.True(t, c.HasRole(entity.RoleAdmin))
	assert.True(t, c.IsActive())
	assert.Equal(t, []string{"CUSTOMER", "ADMIN"}, c.RoleNames())

	r, ok := entity.ParseRole("ADMIN")
	assert.True(t, ok)
	assert.Equal(t, entity.RoleAdmin, r)
	_, ok = entity.ParseRole("bodeguero")
	assert.False(t, ok)
}

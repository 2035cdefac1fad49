package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldran/powerdesk/internal/power"
)

func TestGetBeforeLoad(t *testing.T) {
	s := NewStore()
	list, err := s.Get()
	require.ErrorIs(t, err, ErrNotLoaded)
	assert.Nil(t, list)
}

func TestReplaceThenGet(t *testing.T) {
	s := NewStore()
	s.Replace([]power.Power{{PowerName: "GustUp", PowerID: 1701}})

	list, err := s.Get()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "GustUp", list[0].PowerName)
}

func TestLoadedEmptyListIsNotAnError(t *testing.T) {
	s := NewStore()
	s.Replace(nil)

	list, err := s.Get()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Replace([]power.Power{{PowerName: "GustUp"}})

	list, err := s.Get()
	require.NoError(t, err)
	list[0].PowerName = "Edited"

	again, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, "GustUp", again[0].PowerName)
}

func TestReplaceClonesInput(t *testing.T) {
	s := NewStore()
	input := []power.Power{{PowerName: "GustUp"}}
	s.Replace(input)
	input[0].PowerName = "Edited"

	list, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, "GustUp", list[0].PowerName)
}

func TestConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Replace([]power.Power{{PowerName: "GustUp"}})
		}()
		go func() {
			defer wg.Done()
			s.Get()
		}()
	}
	wg.Wait()

	list, err := s.Get()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

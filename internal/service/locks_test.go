package service

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLockTable_Serializes(t *testing.T) {
	table := newLockTable()
	id := uuid.New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := table.lock(id)
			counter++
			release()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	// All holders released: the table drops its entries.
	assert.Empty(t, table.entries)
}

func TestLockTable_IndependentIDs(t *testing.T) {
	table := newLockTable()

	releaseA := table.lock(uuid.New())
	releaseB := table.lock(uuid.New())

	assert.Len(t, table.entries, 2)

	releaseA()
	releaseB()
	assert.Empty(t, table.entries)
}

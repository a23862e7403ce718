package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestNewSymbolTable(t *testing.T) {
	st := NewSymbolTable()
	be.True(t, st != nil)
	be.Equal(t, st.Len(), 0)
	be.Equal(t, st.Names(), []string{})
}

func TestRegister(t *testing.T) {
	st := NewSymbolTable()

	be.True(t, st.Register("x"))
	be.True(t, st.Contains("x"))
	be.True(t, !st.Contains("y"))
	be.Equal(t, st.Len(), 1)
}

func TestRegisterDuplicate(t *testing.T) {
	st := NewSymbolTable()

	be.True(t, st.Register("x"))
	be.True(t, !st.Register("x"))
	be.Equal(t, st.Len(), 1)
	be.Equal(t, st.Names(), []string{"x"})
}

func TestRegisterKeepsFirstOccurrenceOrder(t *testing.T) {
	st := NewSymbolTable()
	for _, name := range []string{"b", "a", "c", "a", "b", "d"} {
		st.Register(name)
	}
	be.Equal(t, st.Names(), []string{"b", "a", "c", "d"})
}

func TestNamesIsACopy(t *testing.T) {
	st := NewSymbolTable()
	st.Register("x")

	names := st.Names()
	names[0] = "changed"
	be.Equal(t, st.Names(), []string{"x"})
}

func TestNamesAreCaseSensitive(t *testing.T) {
	st := NewSymbolTable()
	st.Register("x")
	be.True(t, !st.Contains("X"))
}

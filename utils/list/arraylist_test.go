package list

import (
	"testing"
)

func TestArrayList_Add(t *testing.T) {
	list := &ArrayList[int]{}

	list.Add(10)
	list.Add(20)

	if list.Size() != 2 {
		t.Errorf("Expected size 2, got %d", list.Size())
	}
}

func TestArrayList_Remove(t *testing.T) {
	list := NewArrayList[int](3)

	list.Add(10)
	list.Add(20)
	list.Add(30)

	removed, err := list.Remove(1) // Eliminar el elemento en índice 1
	if err != nil || removed != 20 {
		t.Errorf("Expected 20 removed, got %d (err %v)", removed, err)
	}

	if list.Size() != 2 {
		t.Errorf("Expected size 2, got %d", list.Size())
	}

	value, _ := list.Get(1)
	if value != 30 {
		t.Errorf("Expected 30 at index 1, got %d", value)
	}
}

func TestArrayList_Remove_ThrowError(t *testing.T) {
	list := &ArrayList[int]{}

	if _, err := list.Remove(0); err == nil {
		t.Errorf("Expected error on empty list, got nil")
	}

	list.Add(10)
	if _, err := list.Remove(3); err == nil {
		t.Errorf("Expected error for index out of range, got nil")
	}
}

func TestArrayList_Size(t *testing.T) {
	list := &ArrayList[int]{}

	if list.Size() != 0 {
		t.Errorf("Expected size 0, got %d", list.Size())
	}

	list.Add(10)

	if list.Size() != 1 {
		t.Errorf("Expected size 1, got %d", list.Size())
	}
}

func TestArrayList_Dequeue(t *testing.T) {
	list := &ArrayList[int]{}

	list.Add(10)
	list.Add(20)
	list.Add(30)

	value, err := list.Dequeue()
	if err != nil || value != 10 {
		t.Errorf("Expected 10 at index 0, got %d", value)
	}

	if list.Size() != 2 {
		t.Errorf("Expected size 2, got %d", list.Size())
	}

	value, err = list.Get(0)
	if err != nil || value != 20 {
		t.Errorf("Expected 20 at index 0, got %d", value)
	}
}

func TestArrayList_Dequeue_ThrowError(t *testing.T) {
	list := &ArrayList[int]{}

	_, err := list.Dequeue()
	if err == nil {
		t.Errorf("Expected error, got nil")
	}
}

func TestArrayList_Insert(t *testing.T) {
	list := &ArrayList[int]{}

	list.Add(10)
	list.Add(20)

	err := list.Insert(1, 30)
	if err != nil {
		t.Errorf("Expected nil, got %v", err)
	}

	expected := []int{10, 30, 20}
	for i, want := range expected {
		value, err := list.Get(i)
		if err != nil || value != want {
			t.Errorf("Expected %d at index %d, got %d", want, i, value)
		}
	}

	// Insertar al final equivale a Add
	if err := list.Insert(list.Size(), 40); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
	if value, _ := list.Get(3); value != 40 {
		t.Errorf("Expected 40 at index 3, got %d", value)
	}
}

func TestArrayList_Insert_ThrowError(t *testing.T) {
	list := &ArrayList[int]{}

	list.Add(10)
	list.Add(20)

	err := list.Insert(4, 30)
	if err == nil {
		t.Errorf("Expected error, got nil")
	}
}

func TestArrayList_Find(t *testing.T) {
	list := &ArrayList[int]{}

	list.Add(10)
	list.Add(20)
	list.Add(30)

	number, index, found := list.Find(func(number int) bool {
		return number == 20
	})

	if !found {
		t.Errorf("Expected true, got %v", found)
	}

	if number != 20 || index != 1 {
		t.Errorf("Expected to find 20 at index 1, got %d at %d", number, index)
	}

	_, index, found = list.Find(func(number int) bool {
		return number == 99
	})
	if found || index != -1 {
		t.Errorf("Expected not found with index -1, got %v at %d", found, index)
	}
}

func TestArrayList_RemoveWhere(t *testing.T) {
	list := &ArrayList[int]{}

	list.Add(10)
	list.Add(20)
	list.Add(20)

	value, removed := list.RemoveWhere(func(number int) bool {
		return number == 20
	})
	if !removed || value != 20 {
		t.Errorf("Expected 20 removed, got %d (%v)", value, removed)
	}

	// Solo se elimina la primera coincidencia
	if list.Size() != 2 {
		t.Errorf("Expected size 2, got %d", list.Size())
	}

	_, removed = list.RemoveWhere(func(number int) bool {
		return number == 99
	})
	if removed {
		t.Errorf("Expected nothing removed")
	}
}

func TestArrayList_Clear(t *testing.T) {
	list := NewArrayList[int](4)

	list.Add(10)
	list.Add(20)
	list.Clear()

	if list.Size() != 0 {
		t.Errorf("Expected size 0, got %d", list.Size())
	}

	list.Add(30)
	if value, _ := list.Get(0); value != 30 {
		t.Errorf("Expected 30 at index 0, got %d", value)
	}
}

func TestArrayList_GetAll_ReturnsCopy(t *testing.T) {
	list := &ArrayList[int]{}

	list.Add(10)
	list.Add(20)

	items := list.GetAll()
	items[0] = 99

	if value, _ := list.Get(0); value != 10 {
		t.Errorf("Expected internal list unchanged, got %d", value)
	}
}

func TestArrayList_ForEach(t *testing.T) {
	list := &ArrayList[int]{}

	list.Add(1)
	list.Add(2)
	list.Add(3)

	sum := 0
	list.ForEach(func(number int) {
		sum += number
	})

	if sum != 6 {
		t.Errorf("Expected sum 6, got %d", sum)
	}
}

package list

import (
	"fmt"
)

// List define las operaciones de una lista ordenada indexable.
type List[T any] interface {
	Add(item T)                                 // Añadir un elemento al final de la lista
	Clear()                                     // Vaciar la lista
	Dequeue() (T, error)                        // Eliminar y devolver el primer elemento de la lista
	Find(predicate func(T) bool) (T, int, bool) // Buscar un elemento dado un predicado
	ForEach(callback func(T))                   // Aplicar la función a cada elemento, en orden
	Get(index int) (T, error)                   // Obtener un elemento a partir de un índice dado
	GetAll() []T                                // Copia de todos los elementos
	Insert(index int, item T) error             // Insertar un elemento en el índice dado
	Remove(index int) (T, error)                // Eliminar y devolver el elemento del índice dado
	RemoveWhere(match func(T) bool) (T, bool)   // Eliminar el primer elemento que cumpla el predicado
	Size() int                                  // Retornar el tamaño de la lista
}

// ArrayList implementa List sobre un slice. No es segura para uso concurrente:
// el simulador la usa desde un único hilo de control.
type ArrayList[T any] struct {
	items []T
}

// NewArrayList crea una lista vacía con la capacidad inicial indicada.
func NewArrayList[T any](capacity int) *ArrayList[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &ArrayList[T]{
		items: make([]T, 0, capacity),
	}
}

// Add inserta un elemento al final de la lista.
//
// Ejemplo:
//
//	func main() {
//		list := &ArrayList[int]{}
//		list.Add(10)
//		list.Add(20) // [10, 20]
//	}
func (list *ArrayList[T]) Add(item T) {
	list.items = append(list.items, item)
}

// Clear vacía la lista conservando la capacidad reservada.
func (list *ArrayList[T]) Clear() {
	var zero T
	for i := range list.items {
		list.items[i] = zero
	}
	list.items = list.items[:0]
}

// Dequeue elimina y devuelve el primer elemento de la cola.
// En caso de que la lista se encuentre vacía retorna el valor "cero" del tipo T y un error.
//
// Ejemplo:
//
//	func main() {
//		numbers := &list.ArrayList[int]{}
//		numbers.Add(10)
//		numbers.Add(20)
//		value, _ := numbers.Dequeue()
//		fmt.Println("Valor: ", value) //output: 10
//	}
func (list *ArrayList[T]) Dequeue() (T, error) {
	return list.Remove(0)
}

// Find permite buscar un elemento de la lista dado un predicado.
// Devuelve el elemento, su índice y si fue encontrado.
//
// Ejemplo:
//
//	func main() {
//		list := &ArrayList[int]{}
//		list.Add(10)
//		list.Add(20)
//
//		number, index, found := list.Find(func(number int) bool {
//			return number == 20
//		}) // 20, 1, true
//	}
func (list *ArrayList[T]) Find(predicate func(T) bool) (T, int, bool) {
	for i, item := range list.items {
		if predicate(item) {
			return item, i, true
		}
	}
	var zero T
	return zero, -1, false
}

// ForEach a cada elemento de la lista se le aplica la función que le pase, en orden.
func (list *ArrayList[T]) ForEach(callback func(T)) {
	for _, item := range list.items {
		callback(item)
	}
}

// Get devuelve el elemento en el índice proporcionado.
func (list *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(list.items) {
		var zero T
		return zero, fmt.Errorf("index out of range: %d", index)
	}
	return list.items[index], nil
}

// GetAll retorna una copia de todos los elementos que se encuentran en la lista.
func (list *ArrayList[T]) GetAll() []T {
	// Copia del slice para que modificaciones externas no afecten la lista interna
	itemsCopy := make([]T, len(list.items))
	copy(itemsCopy, list.items)
	return itemsCopy
}

// Insert inserta un elemento en el índice proporcionado, desplazando los siguientes.
// Insertar en Size() equivale a Add.
//
// Ejemplo:
//
//	func main() {
//		list := &ArrayList[int]{}
//		list.Add(10)
//		list.Add(30)
//
//		_ = list.Insert(1, 100) // [10, 100, 30]
//	}
func (list *ArrayList[T]) Insert(index int, item T) error {
	if index < 0 || index > len(list.items) {
		return fmt.Errorf("index out of range: %d", index)
	}
	var zero T
	list.items = append(list.items, zero)
	copy(list.items[index+1:], list.items[index:])
	list.items[index] = item
	return nil
}

// Remove elimina el elemento del índice dado y lo devuelve.
//
// Ejemplo:
//
//	func main() {
//		list := &ArrayList[int]{}
//		list.Add(10)
//		list.Add(20)
//		list.Add(30)
//		value, _ := list.Remove(1) // 20, lista: [10, 30]
//	}
func (list *ArrayList[T]) Remove(index int) (T, error) {
	var zero T
	if len(list.items) == 0 {
		return zero, fmt.Errorf("list is empty")
	}
	if index < 0 || index >= len(list.items) {
		return zero, fmt.Errorf("index out of range: %d", index)
	}
	item := list.items[index]
	copy(list.items[index:], list.items[index+1:])
	list.items[len(list.items)-1] = zero
	list.items = list.items[:len(list.items)-1]
	return item, nil
}

// RemoveWhere elimina el primer elemento que cumpla el predicado y lo devuelve.
func (list *ArrayList[T]) RemoveWhere(match func(T) bool) (T, bool) {
	_, index, found := list.Find(match)
	if !found {
		var zero T
		return zero, false
	}
	item, _ := list.Remove(index)
	return item, true
}

// Size devuelve el tamaño de la lista.
func (list *ArrayList[T]) Size() int {
	return len(list.items)
}

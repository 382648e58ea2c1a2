package entities

// NoteCollection - упорядоченный кэш заметок, новые в начале.
// Идентификаторы в коллекции уникальны.
type NoteCollection []Note

// NewNoteCollection сохраняет порядок сервера и отбрасывает повторы id,
// оставляя первое вхождение.
func NewNoteCollection(notes []Note) NoteCollection {
	out := make(NoteCollection, 0, len(notes))
	seen := make(map[NoteID]struct{}, len(notes))
	for _, note := range notes {
		if _, ok := seen[note.ID]; ok {
			continue
		}
		seen[note.ID] = struct{}{}
		out = append(out, note)
	}
	return out
}

// Prepend возвращает новую коллекцию с note в начале.
// Запись с тем же id, если она уже была, удаляется.
func (c NoteCollection) Prepend(note Note) NoteCollection {
	out := make(NoteCollection, 0, len(c)+1)
	out = append(out, note)
	for _, existing := range c {
		if existing.ID != note.ID {
			out = append(out, existing)
		}
	}
	return out
}

// Without возвращает коллекцию без заметки с указанным id.
// Отсутствующий id не является ошибкой.
func (c NoteCollection) Without(id NoteID) NoteCollection {
	if !c.Contains(id) {
		return c
	}
	out := make(NoteCollection, 0, len(c)-1)
	for _, note := range c {
		if note.ID != id {
			out = append(out, note)
		}
	}
	return out
}

// Contains сообщает, есть ли заметка с id в коллекции.
func (c NoteCollection) Contains(id NoteID) bool {
	for _, note := range c {
		if note.ID == id {
			return true
		}
	}
	return false
}

// Clone возвращает независимую копию.
func (c NoteCollection) Clone() NoteCollection {
	out := make(NoteCollection, len(c))
	copy(out, c)
	return out
}

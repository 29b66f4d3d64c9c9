package cli

import (
	"context"
	"errors"
	"fmt"
)

var getMultiline = GetMultiline

var errNothingToUpdate = errors.New("nothing to update")

func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	notes, err := a.client.ListNotes(ctx)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		fmt.Fprintln(a.out, "No notes yet")
		return nil
	}
	for _, n := range notes {
		fmt.Fprintln(a.out, n.String())
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Enter content", a.out)
	if err != nil {
		return err
	}

	n, err := a.client.CreateNote(ctx, title, content)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Note %s created\n", n.ID)
	return nil
}

// Edit updates the title and/or content of a note. An empty answer keeps
// the current value.
func (a *App) Edit(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	id, err := getSimpleText(a.reader, "Enter note id to edit", a.out)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Enter new title (empty to keep)", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Enter new content (empty to keep)", a.out)
	if err != nil {
		return err
	}

	var tp, cp *string
	if title != "" {
		tp = &title
	}
	if content != "" {
		cp = &content
	}
	if tp == nil && cp == nil {
		return errNothingToUpdate
	}

	n, err := a.client.UpdateNote(ctx, id, tp, cp)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Note %s updated\n", n.ID)
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	id, err := getSimpleText(a.reader, "Enter note id to delete", a.out)
	if err != nil {
		return err
	}
	if err := a.client.DeleteNote(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Note deleted")
	return nil
}

package services

import (
	"sort"

	"github.com/dobromiryor/yum-sub000/internal/models"
)

// Thread is one top-level comment together with its direct replies.
// Nesting is capped at one level: replies never carry replies of their
// own, which keeps the structure flat and exhaustively checkable.
type Thread struct {
	Comment models.Comment
	Replies []models.Comment
}

// BuildThread assembles the flat comment rows of a single recipe into
// threads: roots sorted newest-first, replies under each root sorted
// oldest-first (natural conversation read order).
//
// A reply whose parent is missing from the input, or whose parent is
// itself a reply (a deep chain the store should never contain), is
// promoted to a root with no replies instead of being dropped. Pure
// function: deterministic for a given input, no I/O, never panics.
func BuildThread(comments []models.Comment) []Thread {
	rootIdx := make(map[uint]int, len(comments))
	threads := make([]Thread, 0, len(comments))

	for _, c := range comments {
		if c.ParentID == nil {
			rootIdx[c.ID] = len(threads)
			threads = append(threads, Thread{Comment: c})
		}
	}

	for _, c := range comments {
		if c.ParentID == nil {
			continue
		}
		if i, ok := rootIdx[*c.ParentID]; ok {
			threads[i].Replies = append(threads[i].Replies, c)
		} else {
			// Orphan: parent deleted out from under it, or a deeper
			// chain than the model allows. Promote to root.
			threads = append(threads, Thread{Comment: c})
		}
	}

	sort.SliceStable(threads, func(i, j int) bool {
		a, b := threads[i].Comment, threads[j].Comment
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	for i := range threads {
		replies := threads[i].Replies
		sort.SliceStable(replies, func(x, y int) bool {
			if !replies[x].CreatedAt.Equal(replies[y].CreatedAt) {
				return replies[x].CreatedAt.Before(replies[y].CreatedAt)
			}
			return replies[x].ID < replies[y].ID
		})
	}

	return threads
}

// Package blog is an example Enumerable: a read-only list of blog posts.
package blog

import (
	"github.com/libreim/enumerators/pkg/enumerable"
)

type Post struct {
	Title  string
	Author string
}

// Blog keeps its posts in insertion order.
// The storage is only reachable through ForEach.
type Blog struct {
	posts []Post
}

var _ enumerable.Enumerable[Post] = (*Blog)(nil)

// New creates a Blog populated once with the given posts.
func New(posts ...Post) *Blog {
	return &Blog{posts: append([]Post(nil), posts...)}
}

// Default returns the LibreIM blog used by the demo.
func Default() *Blog {
	return New(
		Post{Title: "Mean inequalities", Author: "Mario"},
		Post{Title: "Introduction to JavaScript", Author: "David"},
		Post{Title: "Genetic algorithms", Author: "Andrés"},
		Post{Title: "Introduction to Category Theory", Author: "Mario"},
	)
}

func (b *Blog) ForEach(visit func(Post) error) error {
	for _, p := range b.posts {
		if err := visit(p); err != nil {
			return err
		}
	}
	return nil
}

// PostsBy returns the titles of the posts written by author, in traversal order.
func PostsBy(e enumerable.Enumerable[Post], author string) ([]string, error) {
	byAuthor := enumerable.Filter(e, func(p Post) bool { return p.Author == author })
	titles := enumerable.Map(byAuthor, func(p Post) string { return p.Title })
	return enumerable.Collect(titles)
}

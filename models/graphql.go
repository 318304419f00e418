package models

import "github.com/shurcooL/githubv4"

// GraphQLID returns the node ID typed for githubv4 query variables, or nil when the blob has none.
func (b *Blob) GraphQLID() githubv4.ID {
	if b == nil || b.NodeID == nil {
		return nil
	}
	var id githubv4.ID = *b.NodeID
	return id
}

package uid

import "github.com/bwmarrin/snowflake"

// NumberID generates int64 identifiers.
type NumberID interface {
	Generate() int64
}

// Snowflake generates time-ordered int64 IDs suitable for record keys.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake returns a Snowflake generator for the given node number (0-1023).
func NewSnowflake(nodeID int64) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new snowflake ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}

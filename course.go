package courseindex

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"slices"
)

// Course is a single entry of the course catalog.
//
// ID is the key of the course within an Index. Prerequisites lists identifiers
// of other courses, in the order given by the record source. A prerequisite may
// appear more than once and may name a course which is not part of the catalog.
type Course struct {
	ID            string
	Name          string
	Prerequisites []string
}

// HasPrerequisites is true if at least one prerequisite is listed.
func (c Course) HasPrerequisites() bool {
	return len(c.Prerequisites) > 0
}

// Clone returns a copy of c which does not share the prerequisite list.
func (c Course) Clone() Course {
	c.Prerequisites = slices.Clone(c.Prerequisites)
	return c
}

func (c Course) String() string {
	return fmt.Sprintf("%s, %s %v", c.ID, c.Name, c.Prerequisites)
}

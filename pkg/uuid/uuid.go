package uuid

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-uuid"
)

func GenerateUUID() string {
	id, err := uuid.GenerateUUID()
	if err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return id
}

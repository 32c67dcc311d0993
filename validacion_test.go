package validacion_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fiscalmx/validacion"
	"github.com/fiscalmx/validacion/pkg/rfc"
)

func TestValidateRFC(t *testing.T) {
	t.Parallel()

	assert.Equal(t, validacion.Physical, validacion.ValidateRFC("VACE611210MQ9"))
	assert.Equal(t, validacion.Error, validacion.ValidateRFC("VACE611210MQ8"))
	assert.Equal(t, validacion.Moral, validacion.ValidateRFC("ABC680524P73"))
	assert.Equal(t, validacion.Error, validacion.ValidateRFC("ABC680524P74"))

	assert.Equal(t, validacion.Physical, validacion.ValidateRFC("XAXX010101000"))
	assert.Equal(t, validacion.Error, validacion.ValidateRFC("XAXX010101000", rfc.RejectGeneric()))
	assert.Equal(t, validacion.Physical, validacion.ValidateRFC("XEXX010101000"))
	assert.Equal(t, validacion.Error, validacion.ValidateRFC("XEXX010101000", rfc.RejectGeneric()))
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, validacion.ValidateEmail("user@example.com"))
	assert.False(t, validacion.ValidateEmail("user@example.com."))
	assert.False(t, validacion.ValidateEmail("   "))
	assert.False(t, validacion.ValidateEmail(""))
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, validacion.Physical, validacion.ValidateRFC("GODE561231G5A"))
				assert.True(t, validacion.ValidateEmail("user@example.com"))
			}
		}()
	}
	wg.Wait()
}

func ExampleValidateRFC() {
	fmt.Println(validacion.ValidateRFC("VACE611210MQ9"))
	fmt.Println(validacion.ValidateRFC("ABC680524P73"))
	fmt.Println(validacion.ValidateRFC("ABC680524P74"))
	fmt.Println(validacion.ValidateRFC("XEXX010101000", rfc.RejectGeneric()))
	// Output:
	// physical
	// moral
	// error
	// error
}

func ExampleValidateEmail() {
	fmt.Println(validacion.ValidateEmail("user@example.com"))
	fmt.Println(validacion.ValidateEmail("User <user@example.com>"))
	// Output:
	// true
	// false
}

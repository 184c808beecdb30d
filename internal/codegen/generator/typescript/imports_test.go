package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportSet(t *testing.T) {
	var s ImportSet
	s.Add("@angular/forms", "FormBuilder", "FormGroup")
	s.Add("./validators", "zipValidator")
	s.Add("@angular/forms", "Validators", "FormGroup")
	s.Add("./validators", "zipValidator")
	s.Add("./empty")

	assert.Equal(t, []string{"@angular/forms", "./validators", "./empty"}, s.Paths())
	assert.Equal(t, []string{"FormBuilder", "FormGroup", "Validators"}, s.Names("@angular/forms"))
	assert.Equal(t, []string{
		"import { FormBuilder, FormGroup, Validators } from '@angular/forms';",
		"import { zipValidator } from './validators';",
	}, s.Lines())
}

package designer

import "github.com/mj1618/designer-cli/internal/model"

// ConvertibleType pairs a WinForms control type with the UI type it becomes.
type ConvertibleType struct {
	Source string `yaml:"source" json:"source"`
	Target string `yaml:"target" json:"target"`
}

// Framework types referenced by designer property assignments.
const (
	pointType = "System.Drawing.Point"
	sizeType  = "System.Drawing.Size"
)

// convertibleTypes is scanned in order; earlier entries are detected first.
var convertibleTypes = [...]ConvertibleType{
	{Source: "System.Windows.Forms.Button", Target: model.TypeButton},
	{Source: "System.Windows.Forms.Label", Target: model.TypeLabel},
	{Source: "System.Windows.Forms.TextBox", Target: model.TypeTextbox},
	{Source: "System.Windows.Forms.CheckBox", Target: model.TypeCheckbox},
	{Source: "System.Windows.Forms.ComboBox", Target: model.TypeCombobox},
	{Source: "System.Windows.Forms.RadioButton", Target: model.TypeRadio},
	{Source: "System.Windows.Forms.PictureBox", Target: model.TypeImage},
	{Source: "System.Windows.Forms.ListView", Target: model.TypeList},
	{Source: "System.Windows.Forms.GroupBox", Target: model.TypeContainer},
}

// Types returns a copy of the convertible type table in scan order.
func Types() []ConvertibleType {
	out := make([]ConvertibleType, len(convertibleTypes))
	copy(out, convertibleTypes[:])
	return out
}

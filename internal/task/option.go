package task

// Option identifies one packaging parameter. The set of options is
// closed: every Task holds an entry for each member, and submissions
// for anything else are a programmer error.
type Option string

const (
	// OptScriptPath is the entry script to package. Validated on
	// submission; accepting it also derives OptOutName.
	OptScriptPath Option = "script_path"

	// OptIconPath is the application icon. Validated on submission.
	OptIconPath Option = "icon_path"

	// OptOutName is the output name of the packaged application.
	OptOutName Option = "out_name"

	// OptOneFile selects one-file bundling instead of one-dir.
	OptOneFile Option = "onefile"

	// OptConsole controls whether the bundled app opens a console window.
	OptConsole Option = "console"

	// OptHiddenImport lists modules pyinstaller cannot discover itself.
	OptHiddenImport Option = "hidden_import"

	// OptCleanBuild clears the build cache before packaging.
	OptCleanBuild Option = "clean"

	// OptAddData lists extra data files to bundle.
	OptAddData Option = "add_data"

	// OptAddBinary lists extra binary files to bundle.
	OptAddBinary Option = "add_binary"

	// OptOutDir is the directory the bundle is written to.
	OptOutDir Option = "out_dir"
)

// allOptions is the authoritative member list, in display order.
var allOptions = []Option{
	OptScriptPath,
	OptIconPath,
	OptOutName,
	OptOneFile,
	OptConsole,
	OptHiddenImport,
	OptCleanBuild,
	OptAddData,
	OptAddBinary,
	OptOutDir,
}

// Options returns all recognized options in a stable order.
func Options() []Option {
	out := make([]Option, len(allOptions))
	copy(out, allOptions)
	return out
}

// Valid reports whether o is a member of the option enumeration.
func (o Option) Valid() bool {
	for _, opt := range allOptions {
		if o == opt {
			return true
		}
	}
	return false
}

// Value is the accepted value for one option, with an explicit
// present/absent state so an unset option cannot be confused with a
// legitimately falsy value.
type Value struct {
	val interface{}
	set bool
}

// IsSet reports whether a value has been accepted for the option.
func (v Value) IsSet() bool {
	return v.set
}

// Get returns the accepted value and whether one is present.
func (v Value) Get() (interface{}, bool) {
	return v.val, v.set
}

func setValue(val interface{}) Value {
	return Value{val: val, set: true}
}

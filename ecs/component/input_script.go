package component

// InputScript drives an entity's Input from a tengo script instead of the
// keyboard. Path is resolved through prefabs.LoadScript.
type InputScript struct {
	Path string
}

var InputScriptComponent = NewComponent[InputScript]()

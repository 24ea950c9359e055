// Package docmodel is the runtime support library of generated object
// models.
//
// Generated classes embed a Node, which carries the instance namespaces,
// the meta identifier and the non-owning back-reference to the parent.
// Ownership always flows downward: a parent exclusively owns its singular
// children and the members of its list-of collections. The parent reference
// is used only for upward lookups.
//
// Errors found while reading documents are reported to an explicit
// ErrorSink. Discard drops everything; Log collects diagnostics:
//
//	log := &docmodel.Log{}
//	m := model.NewModel(3, 1, 1)
//	if err := docmodel.Read(r, m, log); err != nil {
//	    return err
//	}
//	for _, d := range log.Diagnostics() {
//	    fmt.Println(d)
//	}
//
// Mutating operations return an OperationReturn code rather than an error,
// matching the result taxonomy shared by every generated package.
package docmodel

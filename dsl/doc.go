// Package dsl provides the builder API for formtree.
//
// Overview
//   - Builder API: declare a form tree with Form()/Group(), chain Field()/Refine() then MustBuild()/Build.
//   - Declaration order is preserved: fields validate in the order they were declared, which decides
//     which failure surfaces first. Redeclaring a field replaces its node but keeps its position.
//   - Leaf helpers: String()/Bool()/Int()/Float() wrap formtree.NewLeaf for the common value types.
//   - Refine: attach a named group/form-tier validator; its name lands in Issue.Rule.
//
// Entry points
//   - Form(): create a form builder; chain Field/Refine then MustBuild()/Build.
//   - Group(): same shape for nested groups; Build returns a *formtree.Group usable as a Field node.
//
// Example (quickstart)
//
//	f := dsl.Form().
//	    Field("name", dsl.String("", rules.NonEmpty())).
//	    Field("security", dsl.Group().
//	        Field("password", dsl.String("")).
//	        Field("confirmPassword", dsl.String("")).
//	        Refine("passwords_match", passwordsMatch).
//	        MustBuild()).
//	    MustBuild()
//
//	f2, _ := f.SetValue("security.password", "hunter2")
//	_, err := f2.Validate() // Issues (rule: "passwords_match") until both fields agree
package dsl

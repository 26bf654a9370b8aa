// Package domain contains the value types shared by the calculator, the
// interactive session and the report: the calculation request, the resulting
// antenna geometry and the unit enumerations. They carry no behaviour and no
// infrastructure concerns so every layer can depend on them.
package domain

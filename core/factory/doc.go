// Package factory holds the generic registry used to build pluggable modules
// (regressors, metrics sinks) from a type name and a raw settings map.
//
//	reg := factory.NewRegistry[regression.Regressor]()
//	_ = reg.Register("linear", func(conf map[string]any) (regression.Regressor, error) {
//	    var c regression.LinearConf
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return regression.NewLinear(c)
//	})
//	r, err := reg.Create(factory.ModuleConfig{Type: "linear", Conf: raw})
package factory

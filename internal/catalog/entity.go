package catalog

import "github.com/mdrakibulhaquesardar/flx-cli/pkg/config"

var entityFreezed = mustParse("entity_freezed", `import 'package:freezed_annotation/freezed_annotation.dart';

part '{{.Snake}}_entity.freezed.dart';

@freezed
class {{.Pascal}}Entity with _${{.Pascal}}Entity {
  const factory {{.Pascal}}Entity({
    required String id,
    required String name,
    required DateTime createdAt,
  }) = _{{.Pascal}}Entity;
}
`)

var entityEquatable = mustParse("entity_equatable", `import 'package:equatable/equatable.dart';

class {{.Pascal}}Entity extends Equatable {
  const {{.Pascal}}Entity({
    required this.id,
    required this.name,
    required this.createdAt,
  });

  final String id;
  final String name;
  final DateTime createdAt;

  @override
  List<Object?> get props => [id, name, createdAt];
}
`)

var entityPlain = mustParse("entity_plain", `class {{.Pascal}}Entity {
  const {{.Pascal}}Entity({
    required this.id,
    required this.name,
    required this.createdAt,
  });

  final String id;
  final String name;
  final DateTime createdAt;
}
`)

// Entity renders the domain entity. Exactly one body is emitted, selected
// by the model-style discriminant.
func Entity(name string, cfg config.Config) string {
	d := newCtx(name, cfg)
	switch cfg.ModelStyle() {
	case config.Freezed:
		return render(entityFreezed, d)
	case config.Equatable:
		return render(entityEquatable, d)
	default:
		return render(entityPlain, d)
	}
}

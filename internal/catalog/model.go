package catalog

import "github.com/mdrakibulhaquesardar/flx-cli/pkg/config"

var modelFreezed = mustParse("model_freezed", `import 'package:freezed_annotation/freezed_annotation.dart';

import '../../domain/entities/{{.Snake}}_entity.dart';

part '{{.Snake}}_model.freezed.dart';
part '{{.Snake}}_model.g.dart';

@freezed
class {{.Pascal}}Model with _${{.Pascal}}Model {
  const factory {{.Pascal}}Model({
    required String id,
    required String name,
    @JsonKey(name: 'created_at') required DateTime createdAt,
  }) = _{{.Pascal}}Model;

  factory {{.Pascal}}Model.fromJson(Map<String, dynamic> json) =>
      _${{.Pascal}}ModelFromJson(json);
}

extension {{.Pascal}}ModelX on {{.Pascal}}Model {
  {{.Pascal}}Entity toEntity() =>
      {{.Pascal}}Entity(id: id, name: name, createdAt: createdAt);
}
`)

var modelEquatable = mustParse("model_equatable", `import 'package:equatable/equatable.dart';

import '../../domain/entities/{{.Snake}}_entity.dart';

class {{.Pascal}}Model extends Equatable {
  const {{.Pascal}}Model({
    required this.id,
    required this.name,
    required this.createdAt,
  });

  factory {{.Pascal}}Model.fromJson(Map<String, dynamic> json) => {{.Pascal}}Model(
        id: json['id'] as String,
        name: json['name'] as String,
        createdAt: DateTime.parse(json['created_at'] as String),
      );

  final String id;
  final String name;
  final DateTime createdAt;

  Map<String, dynamic> toJson() => <String, dynamic>{
        'id': id,
        'name': name,
        'created_at': createdAt.toIso8601String(),
      };

  {{.Pascal}}Entity toEntity() =>
      {{.Pascal}}Entity(id: id, name: name, createdAt: createdAt);

  @override
  List<Object?> get props => [id, name, createdAt];
}
`)

var modelPlain = mustParse("model_plain", `import '../../domain/entities/{{.Snake}}_entity.dart';

class {{.Pascal}}Model {
  const {{.Pascal}}Model({
    required this.id,
    required this.name,
    required this.createdAt,
  });

  factory {{.Pascal}}Model.fromJson(Map<String, dynamic> json) => {{.Pascal}}Model(
        id: json['id'] as String,
        name: json['name'] as String,
        createdAt: DateTime.parse(json['created_at'] as String),
      );

  final String id;
  final String name;
  final DateTime createdAt;

  Map<String, dynamic> toJson() => <String, dynamic>{
        'id': id,
        'name': name,
        'created_at': createdAt.toIso8601String(),
      };

  {{.Pascal}}Entity toEntity() =>
      {{.Pascal}}Entity(id: id, name: name, createdAt: createdAt);
}
`)

// Model renders the data-layer model. Every body exposes fromJson and
// toEntity so the repository implementation stays independent of the
// selected style.
func Model(name string, cfg config.Config) string {
	d := newCtx(name, cfg)
	switch cfg.ModelStyle() {
	case config.Freezed:
		return render(modelFreezed, d)
	case config.Equatable:
		return render(modelEquatable, d)
	default:
		return render(modelPlain, d)
	}
}
